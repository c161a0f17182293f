// Package inventory scans the local emoji directory.
//
// Every regular file whose base name does not match an ignore pattern is an
// asset. The asset name is the file name without its extension, so
// "happy.png" becomes "happy". Names are case-sensitive.
//
// Two files that share a base name (happy.png, happy.gif) collapse to a
// single asset. The file whose extension sorts first wins, which keeps the
// result independent of directory read order.
//
// A missing directory is an empty inventory, not an error.
package inventory
