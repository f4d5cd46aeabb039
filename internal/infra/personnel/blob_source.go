// Package personnel provides the leader-candidate sources a director picks
// from when creating a small group.
package personnel

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/domain/service"
	"churchadmin/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

const blobSourceName = "blob"

type blobSource struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewBlobSource reads a JSON array of candidates stored under key in bucket.
// A missing key reads as an empty list.
func NewBlobSource(bucket *blob.Bucket, key string, logger *slog.Logger) service.PersonnelSource {
	return &blobSource{bucket: bucket, key: key, logger: logger}
}

func (s *blobSource) Name() string {
	return blobSourceName
}

func (s *blobSource) ListPersonnel(ctx context.Context, churchID string) ([]entity.Personnel, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []entity.Personnel{}, nil
		}

		return nil, errors.Wrapf(err, "failed to read personnel key %s", s.key)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return []entity.Personnel{}, nil
	}

	var all []entity.Personnel
	if err := json.Unmarshal(data, &all); err != nil {
		s.logger.Warn("Personnel slot holds malformed JSON, treating as empty",
			slog.String("key", s.key),
			slog.Any("error", err))

		return []entity.Personnel{}, nil
	}

	return filterByChurch(all, churchID), nil
}

func filterByChurch(all []entity.Personnel, churchID string) []entity.Personnel {
	out := make([]entity.Personnel, 0, len(all))
	for _, p := range all {
		if churchID != "" && p.ChurchID != churchID {
			continue
		}
		out = append(out, p)
	}

	return out
}
