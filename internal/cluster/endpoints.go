package cluster

import (
	"github.com/tablelink/tablelink/internal/config"
)

const (
	// MasterAddressesKey is the table/job scoped property naming the Tablet
	// cluster's master endpoints as a comma-joined host:port list.
	MasterAddressesKey = "tablet.master.addresses"
	// DefaultMasterAddressesKey holds the globally configured fallback used
	// when a table does not name its own cluster.
	DefaultMasterAddressesKey = "tablet.master.addresses.default"
)

// ResolveMasterAddresses returns the cluster's master endpoint string.
// The table/job scoped key wins; the global default is consulted next.
func ResolveMasterAddresses(conf *config.Config) (string, error) {
	// Use the table property if it exists, falling back to the default
	// configuration.
	masters := conf.GetDefault(MasterAddressesKey, conf.Get(DefaultMasterAddressesKey))
	if masters == "" {
		return "", newError(ErrMissingMasters,
			"not specified in the table property (%s) or default configuration (%s)",
			MasterAddressesKey, DefaultMasterAddressesKey)
	}
	return masters, nil
}
