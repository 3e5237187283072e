package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    RoleUser  = "USER"
    RoleAdmin = "ADMIN"
)

type User struct {
    gorm.Model
    Email        string `gorm:"uniqueIndex;not null"`
    Password     string `gorm:"not null"`
    FullName     string
    Role         string `gorm:"type:varchar(16);not null;default:USER"`
    ResetCode    string
    ResetCodeExp time.Time
}
