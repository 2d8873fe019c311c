package database

import (
	"fmt"

	"github.com/mrlokans/lexicard/internal/entities"
)

func (d *Database) GetUserByUsername(username string) (*entities.User, error) {
	var user entities.User
	if err := d.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err, fmt.Sprintf("user %q", username))
	}
	return &user, nil
}
