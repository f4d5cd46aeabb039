package personnel

import (
	"context"
	"log/slog"
	"testing"

	"churchadmin/internal/domain/entity"
	"churchadmin/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobSource_ListPersonnel(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	payload := `[
		{"id":"p1","name":"Ana Ruiz","email":"ana@iglesia.org","churchId":"church-1"},
		{"id":"p2","name":"Luis Mora","email":"luis@iglesia.org","churchId":"church-2"}
	]`
	require.NoError(t, bucket.WriteAll(ctx, "app_personnel", []byte(payload), nil))

	source := NewBlobSource(bucket, "app_personnel", slog.New(slog.DiscardHandler))
	assert.Equal(t, "blob", source.Name())

	all, err := source.ListPersonnel(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := source.ListPersonnel(ctx, "church-2")
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Luis Mora", filtered[0].Name)
}

func TestBlobSource_MissingOrMalformedKey(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	source := NewBlobSource(bucket, "app_personnel", slog.New(slog.DiscardHandler))

	missing, err := source.ListPersonnel(ctx, "church-1")
	require.NoError(t, err)
	assert.NotNil(t, missing)
	assert.Empty(t, missing)

	require.NoError(t, bucket.WriteAll(ctx, "app_personnel", []byte("{not json"), nil))
	malformed, err := source.ListPersonnel(ctx, "church-1")
	require.NoError(t, err)
	assert.Empty(t, malformed)
}

func TestBackendSource_ListPersonnel(t *testing.T) {
	ctx := context.Background()
	members := memory.NewMemberRepository()
	require.NoError(t, members.Create(ctx, &entity.Member{ID: "m1", FirstName: "Ana", LastName: "Ruiz", Email: "ana@iglesia.org", ChurchID: "church-1"}))
	require.NoError(t, members.Create(ctx, &entity.Member{ID: "m2", FirstName: "Sin", LastName: "Correo", ChurchID: "church-1"}))
	require.NoError(t, members.Create(ctx, &entity.Member{ID: "m3", FirstName: "Luis", Email: "luis@iglesia.org", ChurchID: "church-2"}))

	source := NewBackendSource(members)
	assert.Equal(t, "backend", source.Name())

	church1, err := source.ListPersonnel(ctx, "church-1")
	require.NoError(t, err)
	require.Len(t, church1, 1)
	assert.Equal(t, entity.Personnel{ID: "m1", Name: "Ana Ruiz", Email: "ana@iglesia.org", ChurchID: "church-1"}, church1[0])

	all, err := source.ListPersonnel(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
