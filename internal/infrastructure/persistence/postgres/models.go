package postgres

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                   string  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name                 string  `gorm:"type:varchar(500);not null"`
	Email                string  `gorm:"type:varchar(255);index;not null"`
	Phone                string  `gorm:"type:varchar(20)"`
	Address              string  `gorm:"type:varchar(500)"`
	ProfileImage         string  `gorm:"type:varchar(500)"`
	PasswordHash         string  `gorm:"type:varchar(255);not null"`
	Role                 string  `gorm:"type:varchar(50);not null;index"`
	OTP                  string  `gorm:"column:otp;type:varchar(10)"`
	OTPCreatedAt         *int64  `gorm:"column:otp_created_at"`
	VerifyToken          string  `gorm:"type:varchar(128);index"`
	VerifyTokenCreatedAt *int64
	ResetToken           string `gorm:"type:varchar(128);index"`
	ResetTokenCreatedAt  *int64
	IsVerified           bool   `gorm:"not null;default:false"`
	CreatedAt            int64  `gorm:"autoCreateTime;index"`
	UpdatedAt            int64  `gorm:"autoUpdateTime"`
	DeletedAt            *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// EventManagerDetailModel é o model GORM para perfis profissionais.
// Services e WorkImages são listas serializadas como JSON.
type EventManagerDetailModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      string `gorm:"type:uuid;not null;index"`
	Gender      string `gorm:"type:varchar(20);not null"`
	Age         int    `gorm:"not null"`
	Description string `gorm:"type:text"`
	Services    string `gorm:"type:jsonb;default:'[]'"`
	WorkImages  string `gorm:"type:jsonb;default:'[]'"`
	CreatedAt   int64  `gorm:"autoCreateTime;index"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
	DeletedAt   *int64 `gorm:"index"` // Soft delete
}

func (EventManagerDetailModel) TableName() string {
	return "event_manager_details"
}

// EventManagerCategoryModel é a tabela de junção perfil ↔ categoria
type EventManagerCategoryModel struct {
	EventManagerDetailID string `gorm:"type:uuid;primaryKey"`
	CategoryID           string `gorm:"type:uuid;primaryKey;index"`
}

func (EventManagerCategoryModel) TableName() string {
	return "event_manager_categories"
}

// CategoryModel é o model GORM para categorias
type CategoryModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string `gorm:"type:varchar(100);not null;index"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime"`
	UpdatedAt   int64  `gorm:"autoUpdateTime"`
	DeletedAt   *int64 `gorm:"index"` // Soft delete
}

func (CategoryModel) TableName() string {
	return "categories"
}

// ReviewModel é o model GORM para avaliações
type ReviewModel struct {
	ID             string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventManagerID string `gorm:"type:uuid;not null;index"`
	UserID         string `gorm:"type:uuid;not null;index"`
	Rating         int    `gorm:"not null"`
	Comment        string `gorm:"type:text"`
	CreatedAt      int64  `gorm:"autoCreateTime;index"`
	DeletedAt      *int64 `gorm:"index"` // Soft delete
}

func (ReviewModel) TableName() string {
	return "reviews"
}

// ContactQueryModel é o model GORM para mensagens do formulário de contato
type ContactQueryModel struct {
	ID        string `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);not null"`
	Message   string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime;index"`
	DeletedAt *int64 `gorm:"index"` // Soft delete
}

func (ContactQueryModel) TableName() string {
	return "contact_queries"
}
