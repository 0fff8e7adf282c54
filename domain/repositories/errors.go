package repositories

import "errors"

// ErrNotFound คืนจากทุก implementation เมื่อไม่เจอ record
// เพื่อให้ service layer ไม่ต้องรู้จัก error ของ driver
var ErrNotFound = errors.New("record not found")
