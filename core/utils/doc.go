// Package utils provides small conversion helpers shared by the HTTP and CLI layers,
// mostly for turning loosely typed query and flag values into numbers and booleans.
package utils
