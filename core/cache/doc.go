// Package cache provides the key-value store used to memoize word lookups.
//
// Store covers get, set with ttl, exists, delete and ping. A ttl of zero
// never expires. Two drivers are provided, selected by cache.driver:
//
//   - Redis: go-redis v9 client, the production driver.
//   - Memory: in-process map guarded by a RWMutex, for single-node setups and tests.
//
// Keys are namespaced through Keys:
//
//	keys := cache.Keys{Namespace: "grimoire"}
//	keys.Word("cat")   // grimoire:word:cat
//	keys.Failed("cat") // grimoire:failed:cat
package cache
