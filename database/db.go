package database

import (
	"fmt"
	"os"

	"vtc-onboarding/logger"
	companyModel "vtc-onboarding/models/company"
	driverModel "vtc-onboarding/models/driver"
	hubModel "vtc-onboarding/models/hub"
	logModel "vtc-onboarding/models/log"
	partnerModel "vtc-onboarding/models/partner"
	vehicleModel "vtc-onboarding/models/vehicle"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createForeignKeyConstraints(); err != nil {
		logger.Error("Failed to create foreign key constraints", err)
		return nil, err
	}

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models, in dependency order.
func autoMigrate() error {
	// Stage 1: standalone foundation models
	stage1Models := []interface{}{
		&hubModel.Hub{},
		&companyModel.Company{},
		&partnerModel.Partner{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models depending on Stage 1
	stage2Models := []interface{}{
		&driverModel.Driver{},
		&partnerModel.StatusEvent{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: remaining models
	remainingModels := []interface{}{
		&vehicleModel.Vehicle{},
		&vehicleModel.Settings{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_onboarding_partners_status ON onboarding_partners(status)",
		"CREATE INDEX IF NOT EXISTS idx_onboarding_partners_created_at ON onboarding_partners(created_at)",
		"CREATE INDEX IF NOT EXISTS idx_companies_email ON companies(email)",
		"CREATE INDEX IF NOT EXISTS idx_companies_account_type ON companies(account_type)",
		"CREATE INDEX IF NOT EXISTS idx_drivers_email ON drivers(email)",
		"CREATE INDEX IF NOT EXISTS idx_vehicles_driver_id ON vehicles(driver_id)",
		"CREATE INDEX IF NOT EXISTS idx_vehicle_settings_vehicle_id ON vehicle_settings(vehicle_id)",
		"CREATE INDEX IF NOT EXISTS idx_partner_status_events_partner_id ON partner_status_events(partner_id)",
		"CREATE INDEX IF NOT EXISTS idx_logs_status_code ON logs(status_code)",
		"CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)",
	}

	for _, stmt := range indexes {
		if err := DB.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// createForeignKeyConstraints creates foreign key constraints after auto migration
func createForeignKeyConstraints() error {
	constraints := []struct {
		name string
		sql  string
	}{
		{
			name: "fk_drivers_company",
			sql: `ALTER TABLE drivers ADD CONSTRAINT fk_drivers_company
				  FOREIGN KEY (company_id) REFERENCES companies(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_vehicles_driver",
			sql: `ALTER TABLE vehicles ADD CONSTRAINT fk_vehicles_driver
				  FOREIGN KEY (driver_id) REFERENCES drivers(id)
				  ON UPDATE CASCADE ON DELETE RESTRICT`,
		},
		{
			name: "fk_vehicle_settings_vehicle",
			sql: `ALTER TABLE vehicle_settings ADD CONSTRAINT fk_vehicle_settings_vehicle
				  FOREIGN KEY (vehicle_id) REFERENCES vehicles(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
		{
			name: "fk_partner_status_events_partner",
			sql: `ALTER TABLE partner_status_events ADD CONSTRAINT fk_partner_status_events_partner
				  FOREIGN KEY (partner_id) REFERENCES onboarding_partners(id)
				  ON UPDATE CASCADE ON DELETE CASCADE`,
		},
	}

	for _, constraint := range constraints {
		var exists bool
		checkSQL := `
			SELECT EXISTS (
				SELECT 1 FROM information_schema.table_constraints
				WHERE constraint_name = $1
			)
		`

		err := DB.Raw(checkSQL, constraint.name).Scan(&exists).Error
		if err != nil {
			logger.Warning(fmt.Sprintf("Failed to check constraint existence: %s - Error: %v", constraint.name, err))
			continue
		}

		if !exists {
			if err := DB.Exec(constraint.sql).Error; err != nil {
				logger.Warning(fmt.Sprintf("Failed to create constraint: %s - Error: %v", constraint.name, err))
			} else {
				logger.Success(fmt.Sprintf("Successfully created constraint: %s", constraint.name))
			}
		}
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
