package repository

import "github.com/pkg/errors"

var ErrInvalidInsertedIDType = errors.New("inserted id is not an object id")
