package export

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/sonnes/ganaka/core"
)

// Uploader pushes per-day CSV records to an object store.
type Uploader struct {
	Store  ObjectStore
	Bucket string
	Prefix string
	Logger *log.Logger
}

// UploadDaily uploads one CSV object per day in ascending date order. A
// failed day is logged and skipped; the remaining days still upload. Returns
// the number uploaded and the total number of days.
func (u *Uploader) UploadDaily(ctx context.Context, daily map[string]core.DailyStats, userID string) (uploaded, total int) {
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	total = len(dates)
	for _, date := range dates {
		if err := u.uploadDay(ctx, date, daily[date], userID); err != nil {
			u.Logger.Error("upload failed", "date", date, "err", err)
			continue
		}
		u.Logger.Debug("uploaded", "date", date)
		uploaded++
	}
	return uploaded, total
}

func (u *Uploader) uploadDay(ctx context.Context, date string, day core.DailyStats, userID string) error {
	data, err := Record(userID, date, day)
	if err != nil {
		return err
	}
	key, err := Key(u.Prefix, date, userID)
	if err != nil {
		return err
	}
	metadata := map[string]string{
		"user-id":     userID,
		"report-date": date,
	}
	return u.Store.Put(ctx, u.Bucket, key, data, "text/csv", metadata)
}
