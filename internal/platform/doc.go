// Package platform wraps the few filesystem calls whose behavior differs on
// Windows, where Unix permission bits are not enforced.
package platform
