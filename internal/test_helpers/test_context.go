package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/mike-pete/cms/internal/config"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/repository/chunk"
	"github.com/mike-pete/cms/internal/repository/contact"
	"github.com/mike-pete/cms/internal/repository/file"
	"github.com/mike-pete/cms/internal/service/progress"
	"github.com/mike-pete/cms/internal/storage/database"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

type TestContainer struct {
	Ctx    context.Context
	Logger logger.AppLogger
	DB     database.DBConnector

	RepoFile    *file.Repo
	RepoChunk   *chunk.Repo
	RepoContact *contact.Repo

	ServiceProgress progress.ProgressReader
}

func GetClean(t *testing.T) *TestContainer {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	conf := getTestConfig()
	prepareTestDB(t, &conf.ConfigDB)

	dbConnect, err := database.InitDBConnect(&conf.ConfigDB, guessMigrationDir(t))
	require.NoError(t, err)
	cleanupDB(t, dbConnect)
	t.Cleanup(func() {
		cancel()
		require.NoError(t, dbConnect.Client().Close())
	})

	appLog := logger.NewAppSLogger("test")
	// repo init
	repoFile := file.InitRepo(dbConnect)
	repoChunk := chunk.InitRepo(dbConnect)
	repoContact := contact.InitRepo(dbConnect)

	// service init
	serviceProgress := progress.NewService(appLog, repoFile, repoChunk)
	return &TestContainer{
		Ctx:    ctx,
		Logger: appLog,
		DB:     dbConnect,

		RepoFile:    repoFile,
		RepoChunk:   repoChunk,
		RepoContact: repoContact,

		ServiceProgress: serviceProgress,
	}
}

func prepareTestDB(t *testing.T, cnf *config.DBConf) {
	dbConnect, err := database.InitDBConnect(&config.DBConf{
		Address:        cnf.Address,
		Port:           cnf.Port,
		User:           cnf.User,
		Pass:           cnf.Pass,
		DBName:         "postgres",
		MaxConnections: cnf.MaxConnections,
	}, "")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, dbConnect.Client().Close())
	}()
	if _, err = dbConnect.Client().Exec(fmt.Sprintf("CREATE DATABASE %s", cnf.DBName)); !isDatabaseExists(err) {
		require.NoError(t, err)
	}
}

func getTestConfig() *config.AppConfig {
	return &config.AppConfig{
		AppPort: 0,
		ConfigDB: config.DBConf{
			Address:        "localhost",
			Port:           "5449",
			User:           "aHAjeK",
			Pass:           "AOifjwelmc8dw",
			DBName:         "cms_test",
			MaxConnections: 10,
		},
	}
}

func isDatabaseExists(err error) bool {
	return checkSQLError(err, "42P04")
}

func checkSQLError(err error, code string) bool {
	if err == nil {
		return false
	}
	pqErr, ok := err.(*pq.Error)
	if !ok {
		return false
	}
	return string(pqErr.Code) == code
}

func guessMigrationDir(t *testing.T) string {
	dir, err := os.Getwd()
	require.NoError(t, err)
	res := strings.Split(dir, "/internal")
	return res[0] + "/migrations"
}

func cleanupDB(t *testing.T, connector database.DBConnector) {
	tables := []string{"contacts", "chunks", "files"}
	for _, table := range tables {
		_, err := connector.Client().Exec(fmt.Sprintf("TRUNCATE %s CASCADE", table))
		require.NoError(t, err)
	}
}
