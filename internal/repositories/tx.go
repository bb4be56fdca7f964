package repositories

import (
	"database/sql"

	"gorm.io/gorm"
)

// TxManager абстрагирует gorm.DB.Transaction, чтобы сервисы могли
// объединять несколько записей в одну атомарную единицу, не завися
// от *gorm.DB напрямую (и чтобы в тестах транзакцию можно было подменить).
type TxManager interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}
