// seed 从 Excel 文件批量导入房源数据。
//
// 用法:
//
//	go run ./cmd/seed -file houses.xlsx [-sheet Sheet1] [-truncate]
//
// 工作表第一行是表头，其后每行依次为:
// 标题, 区, 街道, 小区, 户型, 出租方式, 价格, 面积, 发布时间。
// 价格/面积保留原始文本 (可能带单位后缀)，数值含义由搜索管线在
// 查询时提取，不在导入时清洗。
package main

import (
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"house-rental/internal/domain"
	"house-rental/internal/infra/setup"
)

func main() {
	var (
		file     = flag.String("file", "houses.xlsx", "Excel 文件路径")
		sheet    = flag.String("sheet", "", "工作表名，默认取第一个")
		truncate = flag.Bool("truncate", false, "导入前清空 houses 表")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, using environment variables directly")
	}

	db, err := setup.InitDB(
		os.Getenv("MYSQL_USER"), os.Getenv("MYSQL_PASSWORD"),
		os.Getenv("MYSQL_HOST"), os.Getenv("MYSQL_PORT"), os.Getenv("MYSQL_DB"),
	)
	if err != nil {
		logrus.Fatalf("Failed to init DB: %v", err)
	}
	if err := setup.MigrateDB(db); err != nil {
		logrus.Fatalf("Failed to migrate DB: %v", err)
	}

	houses, err := readHouses(*file, *sheet)
	if err != nil {
		logrus.Fatalf("Failed to read %s: %v", *file, err)
	}
	if len(houses) == 0 {
		logrus.Warn("No rows to import")
		return
	}

	if *truncate {
		if err := db.Exec("TRUNCATE TABLE houses").Error; err != nil {
			logrus.Fatalf("Failed to truncate houses table: %v", err)
		}
		logrus.Info("Houses table truncated")
	}

	if err := db.CreateInBatches(houses, 200).Error; err != nil {
		logrus.Fatalf("Failed to insert houses: %v", err)
	}
	logrus.Infof("Imported %d houses from %s", len(houses), *file)
}

// readHouses 读取工作表并逐行转换为 House，跳过表头和空行。
func readHouses(path, sheet string) ([]domain.House, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	var houses []domain.House
	for i, row := range rows {
		if i == 0 || len(row) == 0 { // 表头/空行
			continue
		}
		h := domain.House{
			Title:       cell(row, 0),
			Region:      cell(row, 1),
			Block:       cell(row, 2),
			Address:     cell(row, 3),
			Rooms:       cell(row, 4),
			RentType:    cell(row, 5),
			Price:       cell(row, 6),
			Area:        cell(row, 7),
			PublishTime: parsePublishTime(cell(row, 8)),
		}
		if h.Address == "" && h.Title == "" {
			logrus.Warnf("Skipping row %d: no address or title", i+1)
			continue
		}
		houses = append(houses, h)
	}
	return houses, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// parsePublishTime 接受 unix 秒或 "2006-01-02" 日期，无法解析时用当前时间。
func parsePublishTime(s string) int64 {
	if s == "" {
		return time.Now().Unix()
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ts
	}
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t.Unix()
	}
	return time.Now().Unix()
}
