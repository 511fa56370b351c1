package database

import (
	"fmt"
	"log"

	"clinicore-service/internal/app/config"
	"clinicore-service/internal/app/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func NewMySQLClient(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *gorm.DB {
	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		driverConfig.MySQL.Username,
		driverConfig.MySQL.Password,
		driverConfig.MySQL.Host,
		driverConfig.MySQL.Port,
		driverConfig.MySQL.DbName,
	)

	gormLogLevel := gormlogger.Silent
	if internalConfig.App.Env == "development" {
		gormLogLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormLogLevel),
	})
	if err != nil {
		log.Fatalf("Could not connect to MySQL: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Patient{},
		&models.MedicalRecord{},
		&models.Prescription{},
		&models.LabResult{},
	)
	if err != nil {
		log.Fatalf("Could not run MySQL migrations: %v", err)
	}

	log.Println("Successfully connected to MySQL")
	return db
}
