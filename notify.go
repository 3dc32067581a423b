package main

import (
	"os"
)

type Notifier interface {
	NotifySyncResults(SyncConfig, *SyncResult) error
	NotifySnapshotResults(snapshotConfig SnapshotConfig, snapshotFile *os.File, snapshotErr error) error
}
