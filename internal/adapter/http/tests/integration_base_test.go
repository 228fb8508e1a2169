//go:build integration
// +build integration

package tests

import (
	"fmt"
	"os"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/db"
	"github.com/dontforgetsemicologne/task-flow/internal/config"
)

// IntegrationSuiteBase owns a throwaway MySQL database shared by the suite.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	GormDB     *gorm.DB
	DB         *sqlx.DB
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "taskflow")+"_test")
	params := envOrDefault("MYSQL_PARAMS", "parseTime=true&charset=utf8mb4&loc=UTC")

	adminDB, err := sqlx.Connect("mysql", mysqlDSN(rootUser, rootPassword, host, port, "", params))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)

	conf := &config.Config{
		DbDriver:       config.DriverMySQL,
		DatabaseURL:    mysqlDSN(rootUser, rootPassword, host, port, database, params),
		DbMaxOpenConns: 5,
	}
	gdb, err := db.ConnectDB(conf)
	s.Require().NoError(err)
	s.GormDB = gdb

	sqlDB, err := db.NewSQLX(gdb, conf.DbDriver)
	s.Require().NoError(err)
	s.DB = sqlDB
	s.testDBName = database
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.GormDB != nil {
		s.Require().NoError(db.Close(s.GormDB))
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

// ResetDatabase drops every table and migrates the schema again.
func (s *IntegrationSuiteBase) ResetDatabase() {
	migrator := s.GormDB.Migrator()
	for _, table := range []string{"task_tags", "task_assignees", "team_members", "comments", "tasks", "tags", "teams", "users"} {
		s.Require().NoError(migrator.DropTable(table))
	}
	s.Require().NoError(db.Migrate(s.GormDB))
}

func mysqlDSN(user, password, host, port, database, params string) string {
	if database == "" {
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/?%s", user, password, host, port, params)
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, password, host, port, database, params)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
