package varint

import "github.com/zeebo/errs"

// Error is the class of varint errors.
var Error = errs.Class("varint")
