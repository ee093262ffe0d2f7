/*
Package orm provides an easy to use db wrapper.

Models are stored in a ModelBucket under a key prefixed with the bucket
name. A bucket can maintain secondary indexes, which are kept up to date
on every Put and Delete, and can be used for lookups and queries.

Models are serialized with go-amino. A model must be a struct that only
uses field types amino can encode; prefer fixed width integers.
*/
package orm
