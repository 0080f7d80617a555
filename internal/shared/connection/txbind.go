package connection

import (
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a gorm handle whose statements execute on tx instead of the
// connection pool, so repository calls made through it join the caller's
// transaction and roll back with it.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.Session(&gorm.Session{NewDB: true})
	session.Statement.ConnPool = tx
	return session
}
