package export

import (
	"context"

	"tapacademy.com/attendance/attendance/core"
	"tapacademy.com/attendance/attendance/store"
	"tapacademy.com/attendance/config"
	dbcore "tapacademy.com/attendance/core"
	"tapacademy.com/attendance/infrastructure/communication"
	"tapacademy.com/attendance/infrastructure/filesystem"
)

// OpenArchive picks the S3 bucket when one is configured and falls back to
// a local directory.
func OpenArchive(ctx context.Context, cfg config.Config, dir string) (filesystem.Archive, error) {
	if cfg.ReportBucket != "" {
		return filesystem.ConnectS3(ctx, cfg.ReportBucket, cfg.ReportPrefix)
	}
	return filesystem.DirArchive{Root: dir}, nil
}

// FromConfig connects every collaborator the configuration names.
func FromConfig(ctx context.Context, cfg config.Config, dir string) (*Exporter, error) {
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	archive, err := OpenArchive(ctx, cfg, dir)
	if err != nil {
		return nil, err
	}
	db, err := dbcore.ConnectDB(cfg.DSN, cfg.GormLogLevel())
	if err != nil {
		return nil, err
	}
	ex := store.Direct{DB: db}

	e := &Exporter{
		Manager:  core.NewManager(store.NewAttendanceStore(ex), store.NewUserStore(ex), rules),
		Archive:  archive,
		Notifier: cfg.Notifier(),
		Delivery: Delivery{From: cfg.ReportEmail.From, To: cfg.ReportEmail.To},
	}
	if e.Delivery.enabled() {
		mailer, err := communication.ConnectSES(ctx)
		if err != nil {
			return nil, err
		}
		e.Mailer = mailer
	}
	return e, nil
}
