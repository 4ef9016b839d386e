package employee

// Atributos persistidos de um Employee. Todos são strings planas.
const (
	FieldID              = "id"
	FieldFullName        = "full_name"
	FieldHomePhone       = "home_phone"
	FieldCellPhone       = "cell_phone"
	FieldEmailAddress    = "email_address"
	FieldGovernmentID    = "government_id"
	FieldBirthDate       = "birth_date"
	FieldMaritalStatus   = "marital_status"
	FieldSpouseName      = "spouse_name"
	FieldSpouseEmployer  = "spouse_employer"
	FieldSpouseWorkPhone = "spouse_work_phone"
)

// CreateRequest exige todos os campos; o id é atribuído pelo serviço.
type CreateRequest struct {
	FullName        *string `json:"full_name" validate:"required"`
	HomePhone       *string `json:"home_phone" validate:"required"`
	CellPhone       *string `json:"cell_phone" validate:"required"`
	EmailAddress    *string `json:"email_address" validate:"required"`
	GovernmentID    *string `json:"government_id" validate:"required"`
	BirthDate       *string `json:"birth_date" validate:"required"`
	MaritalStatus   *string `json:"marital_status" validate:"required"`
	SpouseName      *string `json:"spouse_name" validate:"required"`
	SpouseEmployer  *string `json:"spouse_employer" validate:"required"`
	SpouseWorkPhone *string `json:"spouse_work_phone" validate:"required"`
}

// UpdateRequest exige apenas o id; só os campos enviados são alterados.
type UpdateRequest struct {
	ID              *string `json:"id" validate:"required"`
	FullName        *string `json:"full_name"`
	HomePhone       *string `json:"home_phone"`
	CellPhone       *string `json:"cell_phone"`
	EmailAddress    *string `json:"email_address"`
	GovernmentID    *string `json:"government_id"`
	BirthDate       *string `json:"birth_date"`
	MaritalStatus   *string `json:"marital_status"`
	SpouseName      *string `json:"spouse_name"`
	SpouseEmployer  *string `json:"spouse_employer"`
	SpouseWorkPhone *string `json:"spouse_work_phone"`
}
