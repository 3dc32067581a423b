package main

import (
	"fmt"
)

type AppConfig struct {
	Provider    ProviderConfig `required:"true"`
	Concurrency int            `default:"5"`
	Sync        []SyncConfig
	Snapshot    []SnapshotConfig
	Notify      NotifyConfig
}

// ProviderConfig carries the store credentials explicitly. The sync core never
// reads credential state from anywhere else.
type ProviderConfig struct {
	Name            string `required:"true"`
	Region          string
	Profile         string
	CredentialsFile string
}

type SyncConfig struct {
	SourceFolder      string `required:"true"`
	DestinationBucket string `required:"true"`
	// KeyPrefix scopes both uploads and the reconciliation listing. Leave it
	// empty only if the bucket holds nothing but this sync's content, since
	// reconciliation deletes every listed key with no local counterpart.
	KeyPrefix string
	// Interval in seconds between scheduled runs. Zero means run once and exit.
	Interval int
}

type SnapshotConfig struct {
	SourceFolder      string `required:"true"`
	DestinationBucket string `required:"true"`
	At                string `required:"true"`
}

type NotifyConfig struct {
	SNSTopic string
	Region   string
	Profile  string
}

func (c AppConfig) ClientFromConfig() (BucketClient, error) {
	switch c.Provider.Name {
	case "aws":
		return NewS3BucketClient(c.Provider)
	case "gcs":
		return NewGCSBucketClient(c.Provider)
	default:
		return nil, fmt.Errorf("Unknown cloud provider: %s", c.Provider.Name)
	}
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider.Name))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Region: %s", c.Provider.Region))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Concurrent Uploads: %d", c.Concurrency))

	if c.Notify.SNSTopic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.Notify.SNSTopic))
	}

	configStrArr = append(configStrArr, "Folders To Sync:")
	for _, syncConfig := range c.Sync {
		configStrArr = append(configStrArr, fmt.Sprintf("%+v", syncConfig))
	}

	configStrArr = append(configStrArr, "Folders To Snapshot:")
	for _, snapshotConfig := range c.Snapshot {
		configStrArr = append(configStrArr, fmt.Sprintf("%+v", snapshotConfig))
	}

	return configStrArr
}
