package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/sonnes/ganaka/config"
	"github.com/sonnes/ganaka/export"
	"github.com/sonnes/ganaka/stats"
)

func uploadCmd() *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Scan execution logs and upload per-day CSV metrics to the object store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "root",
				Usage: "Path to the Kiro storage directory",
			},
			&cli.StringFlag{
				Name:  "bucket",
				Usage: "Destination bucket (overrides GANAKA_S3_BUCKET)",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "Object key prefix (overrides GANAKA_S3_PREFIX)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			a := newApp()

			bucket := cmd.String("bucket")
			if bucket == "" {
				bucket = a.cfg.Bucket
			}
			if bucket == "" {
				return fmt.Errorf("bucket is required: set --bucket or GANAKA_S3_BUCKET")
			}

			prefix := cmd.String("prefix")
			if prefix == "" {
				prefix = a.cfg.Prefix
			}

			// Resolve the identity before any scan work so a misconfigured
			// user fails fast.
			identity, err := newResolver(a.cfg).Resolve(ctx, a.cfg.Username)
			if err != nil {
				return fmt.Errorf("resolve identity: %w", err)
			}

			results, err := a.newReader(cmd).ReadAll()
			if err != nil {
				return err
			}

			daily := stats.ByDate(results)

			store, err := export.NewMinioStore(a.cfg)
			if err != nil {
				return err
			}

			u := &export.Uploader{
				Store:  store,
				Bucket: bucket,
				Prefix: prefix,
				Logger: log.Default(),
			}

			uploaded, total := u.UploadDaily(ctx, daily, identity.ID)

			fmt.Printf("Found %d executions across %d days\n", len(results), total)
			fmt.Printf("Uploaded %d/%d days for %s\n", uploaded, total, identity.ID)
			if uploaded < total {
				return fmt.Errorf("%d day(s) failed to upload", total-uploaded)
			}
			return nil
		},
	}
}

// newResolver picks the identity source: an identity service when configured,
// otherwise the static user id from the environment.
func newResolver(cfg config.Config) export.Resolver {
	if cfg.IdentityURL != "" {
		return &export.HTTPResolver{BaseURL: cfg.IdentityURL}
	}
	return export.StaticResolver{ID: cfg.UserID, DisplayName: cfg.DisplayName}
}
