package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Form    FormRepo
	Option  OptionLookup
	Signer  SignerLookup
	Request RequestRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Form:    NewFormRepo(db),
		Option:  NewOptionLookup(db),
		Signer:  NewSignerLookup(db),
		Request: NewRequestRepo(db),
		db:      db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Form:    r.Form.WithTx(tx),
		Option:  r.Option.WithTx(tx),
		Signer:  r.Signer.WithTx(tx),
		Request: r.Request.WithTx(tx),
		db:      tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
