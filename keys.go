package waypoint

import "sort"

type Key string

const (
	// UserInfoKey stashes the UserInfo extracted from the gateway header.
	UserInfoKey Key = "UserInfoKey"

	// IpAddrKey stashes the IP address of an HTTP request being handled by waypoint.
	IpAddrKey Key = "IpAddrKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "waypoint context key: " + string(k)
}

// ByKey sorts a set of Keys lexicographically.
type ByKey []Key

var _ sort.Interface = ByKey([]Key{})

func (k ByKey) Len() int           { return len(k) }
func (k ByKey) Swap(i, j int)      { k[i], k[j] = k[j], k[i] }
func (k ByKey) Less(i, j int) bool { return k[i] < k[j] }

// UniqueSort sorts ByKey, removing duplicate and zero-value Keys.
func (k ByKey) UniqueSort() ByKey {
	sort.Sort(k)

	uniq := make(ByKey, 0, len(k))
	for _, key := range k {
		if key == "" {
			continue
		}

		if len(uniq) > 0 && uniq[len(uniq)-1] == key {
			continue
		}

		uniq = append(uniq, key)
	}

	return uniq
}
