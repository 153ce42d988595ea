package middleware

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const dbKey = "db"

// DBTransaction scopes one database transaction to each request: begin on
// entry, commit when the handler chain succeeds, roll back when it returns
// an error. Handlers retrieve the handle with Session.
func DBTransaction(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tx := db.WithContext(c.UserContext()).Begin()
		if tx.Error != nil {
			return tx.Error
		}

		c.Locals(dbKey, tx)

		if err := c.Next(); err != nil {
			tx.Rollback()
			return err
		}
		return tx.Commit().Error
	}
}

// Session returns the request-scoped transaction installed by DBTransaction.
func Session(c *fiber.Ctx) *gorm.DB {
	return c.Locals(dbKey).(*gorm.DB)
}
