// Package cache implements the product read cache. The Redis backend stores
// JSON encoded products under products:id:<id> and the unfiltered list under
// products:list, both with a TTL. Writes invalidate the touched product and the list.
package cache
