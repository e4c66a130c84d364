/*
Package x contains the interfaces shared by all ledger extensions, along with
some utility functions for them.

Extensions are the modules that contain actual state transitions. They live
in subpackages of x and are wired together by the application in app.
*/
package x
