package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewConnection_Validates(t *testing.T) {
	_, err := NewConnection(nil)
	require.Error(t, err)

	_, err = NewConnection(&Config{URI: "mongodb://localhost:27017"})
	require.Error(t, err)

	conn, err := NewConnection(&Config{URI: "mongodb://localhost:27017", DBName: "studycoach"})
	require.NoError(t, err)
	require.Equal(t, DefaultConfig().Timeout, conn.cfg.Timeout)
}

func TestConnection_CloseBeforeGet(t *testing.T) {
	conn, err := NewConnection(&Config{URI: "mongodb://localhost:27017", DBName: "studycoach"})
	require.NoError(t, err)
	require.NoError(t, conn.Close(context.Background()))
}

func TestConnection_GetFailsFastAndSticks(t *testing.T) {
	conn, err := NewConnection(&Config{
		URI:     "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
		DBName:  "studycoach",
		Timeout: 500 * time.Millisecond,
	})
	require.NoError(t, err)

	_, err = conn.Get(context.Background())
	require.Error(t, err)

	_, again := conn.Get(context.Background())
	require.Equal(t, err, again)
}
