package cacheddb

import (
	"database/sql"
	"time"

	"code.cloudfoundry.org/scalingengine/db"
	"code.cloudfoundry.org/scalingengine/models"

	"code.cloudfoundry.org/lager/v3"
	cache "github.com/patrickmn/go-cache"
)

// CachedPolicyDB is a read-through cache in front of a PolicyDB. Lookups
// come from the cache when present, otherwise from the wrapped store; the
// policy layer invalidates entries on writes. Stale reads until the next
// invalidation are tolerated.
type CachedPolicyDB struct {
	logger      lager.Logger
	policyDB    db.PolicyDB
	policyCache *cache.Cache
	appCache    *cache.Cache
}

func NewCachedPolicyDB(logger lager.Logger, policyDB db.PolicyDB, ttl time.Duration, cleanupInterval time.Duration) *CachedPolicyDB {
	return &CachedPolicyDB{
		logger:      logger.Session("cached-policy-db"),
		policyDB:    policyDB,
		policyCache: cache.New(ttl, cleanupInterval),
		appCache:    cache.New(ttl, cleanupInterval),
	}
}

func (cdb *CachedPolicyDB) GetApplication(appId string) (*models.Application, error) {
	if cached, found := cdb.appCache.Get(appId); found {
		return cached.(*models.Application), nil
	}

	app, err := cdb.policyDB.GetApplication(appId)
	if err != nil {
		return nil, err
	}
	cdb.appCache.SetDefault(appId, app)
	return app, nil
}

func (cdb *CachedPolicyDB) GetAppPolicy(appId string) (*models.Policy, error) {
	if cached, found := cdb.policyCache.Get(appId); found {
		return cached.(*models.Policy), nil
	}

	policy, err := cdb.policyDB.GetAppPolicy(appId)
	if err != nil {
		return nil, err
	}
	cdb.policyCache.SetDefault(appId, policy)
	return policy, nil
}

// InvalidateCache drops the cached application and policy for appId so the
// next lookup reads through to the store.
func (cdb *CachedPolicyDB) InvalidateCache(appId string) {
	cdb.logger.Debug("invalidate-cache", lager.Data{"appId": appId})
	cdb.appCache.Delete(appId)
	cdb.policyCache.Delete(appId)
}

func (cdb *CachedPolicyDB) GetDBStatus() sql.DBStats {
	return cdb.policyDB.GetDBStatus()
}

func (cdb *CachedPolicyDB) Close() error {
	return cdb.policyDB.Close()
}

var _ db.PolicyDB = &CachedPolicyDB{}
