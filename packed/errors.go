package packed

import "github.com/zeebo/errs"

// Error is the class of packed errors.
var Error = errs.Class("packed")
