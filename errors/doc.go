/*
Package errors implements custom error interfaces for pairswap.

Error declarations should be generic and cover broad range of cases. Each
returned error instance can wrap a generic error declaration to provide more
details. Extensions register their own root errors with a unique code using
the Register function.
*/
package errors
