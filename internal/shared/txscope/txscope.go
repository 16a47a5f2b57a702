package txscope

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns db bound to ctx, running on tx when one is given. Repositories
// hold the *sql.Tx opened by their service and route every query through here.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	session := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
