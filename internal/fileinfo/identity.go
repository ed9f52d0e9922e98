package fileinfo

import (
	"os/user"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
)

const identityCacheSize = 256

// IdentityCache memoizes uid/gid to name resolution for one invocation.
// Ids without a matching name resolve to their decimal form.
type IdentityCache struct {
	users  *lru.Cache[uint32, string]
	groups *lru.Cache[uint32, string]

	lookupUser  func(string) (string, error)
	lookupGroup func(string) (string, error)
	log         logrus.FieldLogger
}

// NewIdentityCache returns a cache backed by the system user database.
func NewIdentityCache(log logrus.FieldLogger) *IdentityCache {
	return newIdentityCache(log,
		func(id string) (string, error) {
			u, err := user.LookupId(id)
			if err != nil {
				return "", err
			}
			return u.Username, nil
		},
		func(id string) (string, error) {
			g, err := user.LookupGroupId(id)
			if err != nil {
				return "", err
			}
			return g.Name, nil
		},
	)
}

func newIdentityCache(log logrus.FieldLogger, lookupUser, lookupGroup func(string) (string, error)) *IdentityCache {
	// lru.New only fails for a non-positive size
	users, _ := lru.New[uint32, string](identityCacheSize)
	groups, _ := lru.New[uint32, string](identityCacheSize)
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &IdentityCache{
		users:       users,
		groups:      groups,
		lookupUser:  lookupUser,
		lookupGroup: lookupGroup,
		log:         log,
	}
}

// User returns the login name for uid.
func (c *IdentityCache) User(uid uint32) string {
	return c.resolve(c.users, c.lookupUser, uid, "user")
}

// Group returns the group name for gid.
func (c *IdentityCache) Group(gid uint32) string {
	return c.resolve(c.groups, c.lookupGroup, gid, "group")
}

func (c *IdentityCache) resolve(cache *lru.Cache[uint32, string], lookup func(string) (string, error), id uint32, kind string) string {
	if name, ok := cache.Get(id); ok {
		return name
	}
	key := strconv.FormatUint(uint64(id), 10)
	name, err := lookup(key)
	if err != nil || name == "" {
		c.log.WithField(kind, key).Debug("no name for id, showing number")
		name = key
	}
	cache.Add(id, name)
	return name
}
