// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

import "github.com/zeebo/errs"

// Error is the error class for all errors returned by this package.
var Error = errs.Class("hsnr")
