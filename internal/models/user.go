// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package models

import "time"

// User is a registered account bound to the device it registered from.
// DeviceAddress is the client network address seen at registration, not a
// hardware identifier.
type User struct { //nolint:govet // fieldalignment: readability over optimization
	ID            int64     `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	DeviceAddress string    `db:"device_address" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}
