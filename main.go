package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

// runSync runs one sync and logs its outcome, whether invoked once at
// startup or repeatedly from the scheduler. It reports whether anything
// failed so the run-once path can map it to the exit code.
func runSync(client BucketClient, sc SyncConfig, threads int, notifier Notifier, lock *sync.Mutex) bool {
	result, syncErr := doSync(client, sc, threads, notifier, lock)
	if syncErr != nil {
		log.Error(fmt.Sprintf("Sync failed for %s: %s", sc.SourceFolder, syncErr))
		return true
	}

	log.Info(fmt.Sprintf(
		"Synced %s: %d uploaded, %d deleted, %d upload failures, %d delete failures",
		sc.SourceFolder, result.Uploaded, result.Deleted,
		len(result.UploadFailures), len(result.DeleteFailures),
	))
	return result.Failed()
}

func main() {
	configFilePath := flag.String("configfile", "", "Configuration File Path")
	flag.Parse()

	if *configFilePath == "" {
		log.Fatal("Required flag -configfile not set but required")
	}

	var appConfig AppConfig
	configErr := configor.Load(&appConfig, *configFilePath)
	if configErr != nil {
		log.Fatal(fmt.Sprintf("Error loading config file: %s", configErr))
	}

	for _, configLine := range appConfig.ConfigStringArray() {
		log.Info(configLine)
	}

	client, clientErr := appConfig.ClientFromConfig()
	if clientErr != nil {
		log.Fatal(fmt.Sprintf("Error creating bucket client: %s", clientErr))
	}

	var notifier Notifier
	if appConfig.Notify.SNSTopic != "" {
		var notifierErr error
		notifier, notifierErr = NewSNSNotifier(appConfig)
		if notifierErr != nil {
			log.Fatal(fmt.Sprintf("Error creating SNS notifier: %s", notifierErr))
		}
	}

	scheduler := gocron.NewScheduler(time.Local)
	scheduled := false
	failed := false

	for _, sc := range appConfig.Sync {
		sc := sc
		lock := new(sync.Mutex)
		if sc.Interval > 0 {
			_, jobErr := scheduler.Every(sc.Interval).Seconds().Do(func() {
				runSync(client, sc, appConfig.Concurrency, notifier, lock)
			})
			if jobErr != nil {
				log.Fatal(fmt.Sprintf("Error scheduling sync for %s: %s", sc.SourceFolder, jobErr))
			}
			scheduled = true
			continue
		}

		if runSync(client, sc, appConfig.Concurrency, notifier, lock) {
			failed = true
		}
	}

	for _, snc := range appConfig.Snapshot {
		snc := snc
		_, jobErr := scheduler.Every(1).Day().At(snc.At).Do(func() {
			doSnapshot(client, snc, notifier)
		})
		if jobErr != nil {
			log.Fatal(fmt.Sprintf("Error scheduling snapshot for %s: %s", snc.SourceFolder, jobErr))
		}
		scheduled = true
	}

	if scheduled {
		scheduler.StartBlocking()
	}

	if failed {
		os.Exit(1)
	}
}
