package filesystem

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = b
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(f.objects[aws.ToString(in.Key)]))}, nil
}

func (f *fakeS3) ListObjectsV2(_ context.Context, in *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	out := &s3.ListObjectsV2Output{}
	for k := range f.objects {
		if strings.HasPrefix(k, aws.ToString(in.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: aws.String(k)})
		}
	}
	return out, nil
}

func TestS3Archive(t *testing.T) {
	client := newFakeS3()
	archive := NewS3Archive(client, "reports", "attendance/")
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, "2025-03-04/attendance_report.csv", strings.NewReader("Name\n"), "text/csv"))
	assert.Equal(t, "text/csv", client.types["attendance/2025-03-04/attendance_report.csv"])

	var buf bytes.Buffer
	require.NoError(t, archive.ReadFile(ctx, "2025-03-04/attendance_report.csv", &buf))
	assert.Equal(t, "Name\n", buf.String())

	keys, err := archive.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-04/attendance_report.csv"}, keys)

	buf.Reset()
	require.NoError(t, archive.ReadFile(ctx, keys[0], &buf))
	assert.Equal(t, "Name\n", buf.String())
}

func TestDirArchive(t *testing.T) {
	root := t.TempDir()
	archive := DirArchive{Root: root}
	ctx := context.Background()

	require.NoError(t, archive.Save(ctx, "2025-03-04/attendance_report.csv", strings.NewReader("Name\n"), "text/csv"))
	require.NoError(t, archive.Save(ctx, "../escape.csv", strings.NewReader("x"), "text/csv"))

	b, err := os.ReadFile(filepath.Join(root, "2025-03-04", "attendance_report.csv"))
	require.NoError(t, err)
	assert.Equal(t, "Name\n", string(b))

	keys, err := archive.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-03-04/attendance_report.csv", "escape.csv"}, keys)

	var buf bytes.Buffer
	require.NoError(t, archive.ReadFile(ctx, keys[0], &buf))
	assert.Equal(t, "Name\n", buf.String())
	assert.Error(t, archive.ReadFile(ctx, "missing.csv", &buf))
}

func TestDirArchiveListBeforeFirstSave(t *testing.T) {
	archive := DirArchive{Root: filepath.Join(t.TempDir(), "not-created-yet")}

	keys, err := archive.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestArchivesAgreeOnKeys(t *testing.T) {
	ctx := context.Background()
	archives := map[string]Archive{
		"s3":  NewS3Archive(newFakeS3(), "reports", "attendance/"),
		"dir": DirArchive{Root: t.TempDir()},
	}
	for name, archive := range archives {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, archive.Save(ctx, "2025-03-04/attendance_report.xlsx", strings.NewReader("PK"), "application/zip"))

			keys, err := archive.List(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"2025-03-04/attendance_report.xlsx"}, keys)

			var buf bytes.Buffer
			require.NoError(t, archive.ReadFile(ctx, keys[0], &buf))
			assert.Equal(t, "PK", buf.String())
		})
	}
}
