package database

import "github.com/mrlokans/lexicard/internal/entities"

const DefaultLecturePageSize = 10

func (d *Database) ListLectures(page, pageSize int) ([]entities.Lecture, int64, error) {
	if pageSize < 1 {
		pageSize = DefaultLecturePageSize
	}

	var total int64
	if err := d.DB.Model(&entities.Lecture{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	lectures := []entities.Lecture{}
	err := d.DB.Order("created_at").Order("id").
		Limit(pageSize).Offset(offset(page, pageSize)).
		Find(&lectures).Error
	return lectures, total, err
}
