package domain

import "time"

type Store struct {
	ID       uint64
	Name     string
	Location string
}

type Review struct {
	ID         uint64
	UserID     uint64
	ItemID     uint64
	Rating     int32
	Comment    string
	ReviewTime time.Time
}
