package bigsum

import "github.com/zeebo/errs"

// Error is the class of errors returned by this package.
var Error = errs.Class("bigsum")
