package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	ID           uint64
	Login        string
	Password     string
	Phone        string
	Role         UserRole
	Balance      decimal.Decimal
	RegisteredAt time.Time
}
