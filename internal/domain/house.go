// Package domain 定义了应用程序中使用的数据结构 (数据库模型)。
package domain

// House 表示一条租房房源记录。
// price/area 是录入时的自由文本 (如 "3500元/月"、"75平米")，
// 数值含义必须通过 search.ExtractNumber 派生，不能直接当数字使用。
type House struct {
	ID          uint   `gorm:"primaryKey"`                     // 房源唯一标识符 (主键)
	Title       string `gorm:"type:varchar(191)"`              // 标题，可能为空，展示时回退为 "地址 户型"
	Region      string `gorm:"type:varchar(64);index"`         // 行政区 (如 "朝阳")
	Block       string `gorm:"type:varchar(64);index"`         // 街道/板块
	Address     string `gorm:"type:varchar(191);index"`        // 小区/详细地址
	Rooms       string `gorm:"type:varchar(32);index"`         // 户型描述 (如 "2室1厅")
	RentType    string `gorm:"type:varchar(32)"`               // 出租方式 (整租/合租)
	Price       string `gorm:"type:varchar(64)"`               // 价格原始文本，可能带单位后缀
	Area        string `gorm:"type:varchar(64)"`               // 面积原始文本，可能带单位后缀
	PublishTime int64  `gorm:"index"`                          // 发布时间 (unix 秒)
	PageViews   uint   `gorm:"default:0"`                      // 浏览量，详情页每次访问 +1，单调不减
}

// DisplayTitle 返回用于展示的标题；title 为空时回退为 "地址 户型"。
func (h *House) DisplayTitle() string {
	if h.Title != "" {
		return h.Title
	}
	return h.Address + " " + h.Rooms
}
