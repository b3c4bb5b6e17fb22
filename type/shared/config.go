package shared

type Config struct {
	Environment      *bool     `yaml:"environment" validate:"required"`
	Port             *string   `yaml:"port" validate:"required"`
	Cors             []*string `yaml:"cors" validate:"required"`
	JWTSecret        *string   `yaml:"jwt_secret" validate:"required"`
	Postgres         *string   `yaml:"postgres" validate:"required"`
	PostgresReplicas []*string `yaml:"postgres_replicas"`
	Mongo            *string   `yaml:"mongo" validate:"required"`
	MongoDatabase    *string   `yaml:"mongo_database" validate:"required"`
	PublicURLBase    *string   `yaml:"public_url_base" validate:"required,url"`
	TemplatePath     *string   `yaml:"template_path" validate:"required_without=TemplateObject"`
	TemplateBucket   *string   `yaml:"template_bucket" validate:"required_with=TemplateObject"`
	TemplateObject   *string   `yaml:"template_object"`
	ScanCodeVersion  *int      `yaml:"scan_code_version" validate:"omitempty,min=1,max=40"`
	LayoutBorder     *int      `yaml:"layout_border" validate:"omitempty,min=0"`
	LayoutRadius     *float64  `yaml:"layout_inner_radius" validate:"omitempty,min=0"`
	MinIoEndpoint    *string   `yaml:"minio_endpoint"`
	MinIoAccessKey   *string   `yaml:"minio_access_key"`
	MinIoSecretKey   *string   `yaml:"minio_secret_key"`
	BadgeBucket      *string   `yaml:"badge_bucket"`
	BadgeArchiveDays *int      `yaml:"badge_archive_days" validate:"omitempty,min=1"`
	MailHost         *string   `yaml:"mail_host" validate:"required"`
	MailPort         *int      `yaml:"mail_port"`
	MailUser         *string   `yaml:"mail_user" validate:"required"`
	MailPass         *string   `yaml:"mail_pass" validate:"required"`
	SigningEnabled   *bool     `yaml:"signing_enabled"`
	SigningCertPath  *string   `yaml:"signing_cert_path"`
	SigningKeyPath   *string   `yaml:"signing_key_path"`
}
