// Package dto 定义对外的 JSON 数据形状。
package dto

import "house-rental/internal/domain"

// HouseJSON 是房源列表项的对外 JSON 形状。
// title 为空时回退为 "地址 户型"，保证前端展示不出现空标题。
type HouseJSON struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Region    string `json:"region"`
	Block     string `json:"block"`
	Address   string `json:"address"`
	Rooms     string `json:"rooms"`
	Price     string `json:"price"`
	PageViews uint   `json:"page_views"`
}

// FromHouse 把领域模型转换为对外 JSON 形状。
func FromHouse(h domain.House) HouseJSON {
	return HouseJSON{
		ID:        h.ID,
		Title:     h.DisplayTitle(),
		Region:    h.Region,
		Block:     h.Block,
		Address:   h.Address,
		Rooms:     h.Rooms,
		Price:     h.Price,
		PageViews: h.PageViews,
	}
}

// FromHouses 批量转换，nil 输入产出空切片而不是 null。
func FromHouses(houses []domain.House) []HouseJSON {
	out := make([]HouseJSON, 0, len(houses))
	for _, h := range houses {
		out = append(out, FromHouse(h))
	}
	return out
}
