package domain

import "time"

type Pfad string

const (
	PfadNABEG Pfad = "NABEG"
	PfadEnWG  Pfad = "EnWG"
)

type Lang string

const (
	LangDE Lang = "de"
	LangEN Lang = "en"
)

// ParseLang maps a query value to a supported language, defaulting to German.
func ParseLang(s string) Lang {
	if Lang(s) == LangEN {
		return LangEN
	}
	return LangDE
}

type FormField struct {
	Name  string `json:"name" yaml:"name"`
	Label string `json:"label" yaml:"label"`
	Type  string `json:"type" yaml:"type" enum:"text,textarea,date"`
}

type TaskTemplate struct {
	ID          string      `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Checklist   []string    `json:"checklist" yaml:"checklist"`
	FormFields  []FormField `json:"form_fields" yaml:"form_fields"`
}

type StageTemplate struct {
	ID           string         `json:"id" yaml:"id"`
	Title        string         `json:"title" yaml:"title"`
	LawReference string         `json:"law_reference" yaml:"law_reference"`
	Description  string         `json:"description" yaml:"description"`
	InfoText     string         `json:"info_text" yaml:"info_text"`
	Tasks        []TaskTemplate `json:"tasks" yaml:"tasks"`
}

type ProcessTemplate struct {
	Pfad        Pfad            `json:"pfad" yaml:"pfad" enum:"NABEG,EnWG"`
	Label       string          `json:"label" yaml:"label"`
	Description string          `json:"description" yaml:"description"`
	Stages      []StageTemplate `json:"stages" yaml:"stages"`
}

type TaskInstance struct {
	ID                 string            `json:"id" yaml:"id"`
	TemplateID         string            `json:"template_id" yaml:"template_id"`
	Status             TaskStatus        `json:"status" yaml:"status" enum:"pending,in_progress,done"`
	FormData           map[string]string `json:"form_data" yaml:"form_data"`
	CompletedChecklist []int             `json:"completed_checklist" yaml:"completed_checklist"`
	UpdatedAt          *time.Time        `json:"updated_at" yaml:"updated_at" format:"date-time"`
}

type StageInstance struct {
	ID         string         `json:"id" yaml:"id"`
	TemplateID string         `json:"template_id" yaml:"template_id"`
	Status     StageStatus    `json:"status" yaml:"status" enum:"pending,active,completed"`
	Tasks      []TaskInstance `json:"tasks" yaml:"tasks"`
}

// Section is a route segment with its own stage progression.
type Section struct {
	ID                string          `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	KmStart           float64         `json:"km_start" yaml:"km_start"`
	KmEnd             float64         `json:"km_end" yaml:"km_end"`
	Region            string          `json:"region" yaml:"region"`
	CurrentStageIndex int             `json:"current_stage_index" yaml:"current_stage_index"`
	Stages            []StageInstance `json:"stages" yaml:"stages"`
}

type PermitType string

const (
	PermitNaturschutz    PermitType = "naturschutz"
	PermitWaldumwandlung PermitType = "waldumwandlung"
	PermitWasserrecht    PermitType = "wasserrecht"
	PermitKreuzung       PermitType = "kreuzung"
	PermitImmission      PermitType = "immission"
	PermitDenkmalschutz  PermitType = "denkmalschutz"
)

type PermitStatus struct {
	ID         string     `json:"id" yaml:"id"`
	SectionID  string     `json:"section_id" yaml:"section_id"`
	PermitType PermitType `json:"permit_type" yaml:"permit_type" enum:"naturschutz,waldumwandlung,wasserrecht,kreuzung,immission,denkmalschutz"`
	Label      string     `json:"label" yaml:"label"`
	Status     string     `json:"status" yaml:"status" enum:"open,in_progress,approved"`
}

type Blocker struct {
	BlockerID string `json:"blocker_id" yaml:"blocker_id"`
	Title     string `json:"title" yaml:"title"`
	Severity  string `json:"severity" yaml:"severity"`
	OwnerRole string `json:"owner_role" yaml:"owner_role"`
}

type GeoLayer struct {
	LayerID     string `json:"layer_id" yaml:"layer_id"`
	Type        string `json:"type" yaml:"type"`
	Source      string `json:"source" yaml:"source"`
	GeometryRef string `json:"geometry_ref" yaml:"geometry_ref"`
	LastUpdate  string `json:"last_update" yaml:"last_update"`
}

type LandParcel struct {
	ParcelID     string `json:"parcel_id" yaml:"parcel_id"`
	OwnerType    string `json:"owner_type" yaml:"owner_type"`
	RightsStatus string `json:"rights_status" yaml:"rights_status"`
	ContactRef   string `json:"contact_ref" yaml:"contact_ref"`
}

type Stakeholder struct {
	StakeholderID    string `json:"stakeholder_id" yaml:"stakeholder_id"`
	Type             string `json:"type" yaml:"type"`
	Name             string `json:"name" yaml:"name"`
	PreferredChannel string `json:"preferred_channel" yaml:"preferred_channel"`
}

type SimilarityFeatures struct {
	RoutingType         string `json:"routing_type,omitempty" yaml:"routing_type"`
	ForestCrossing      *bool  `json:"forest_crossing,omitempty" yaml:"forest_crossing"`
	FFHOverlap          *bool  `json:"ffh_overlap,omitempty" yaml:"ffh_overlap"`
	State               string `json:"state,omitempty" yaml:"state"`
	SettlementDistanceM *int   `json:"settlement_distance_m,omitempty" yaml:"settlement_distance_m"`
	WSGOverlap          *bool  `json:"wsg_overlap,omitempty" yaml:"wsg_overlap"`
}

type HistoricalCase struct {
	CaseID             string             `json:"case_id" yaml:"case_id"`
	Title              string             `json:"title" yaml:"title"`
	SimilarityFeatures SimilarityFeatures `json:"similarity_features" yaml:"similarity_features"`
	Outcome            string             `json:"outcome" yaml:"outcome"`
	KeyReasons         []string           `json:"key_reasons" yaml:"key_reasons"`
	ReusableDocs       []string           `json:"reusable_docs" yaml:"reusable_docs"`
}

type ProjectDocument struct {
	DocID       string `json:"doc_id" yaml:"doc_id"`
	DocType     string `json:"doc_type" yaml:"doc_type"`
	Version     string `json:"version" yaml:"version"`
	Status      string `json:"status" yaml:"status"`
	Source      string `json:"source" yaml:"source"`
	LinkedStage string `json:"linked_stage" yaml:"linked_stage"`
}

type ProjectTask struct {
	TaskID         string   `json:"task_id" yaml:"task_id"`
	Title          string   `json:"title" yaml:"title"`
	OwnerRole      string   `json:"owner_role" yaml:"owner_role"`
	DueDate        string   `json:"due_date" yaml:"due_date"`
	Dependencies   []string `json:"dependencies" yaml:"dependencies"`
	DoneDefinition string   `json:"done_definition" yaml:"done_definition"`
}

type Risk struct {
	RiskID      string  `json:"risk_id" yaml:"risk_id"`
	Category    string  `json:"category" yaml:"category"`
	Probability float64 `json:"probability" yaml:"probability"`
	Impact      float64 `json:"impact" yaml:"impact"`
	Mitigation  string  `json:"mitigation" yaml:"mitigation"`
	Owner       string  `json:"owner" yaml:"owner"`
}

type RegulatoryRequirement struct {
	RequirementID     string   `json:"requirement_id" yaml:"requirement_id"`
	LegalBasis        string   `json:"legal_basis" yaml:"legal_basis"`
	TriggerCondition  string   `json:"trigger_condition" yaml:"trigger_condition"`
	RequiredArtifacts []string `json:"required_artifacts" yaml:"required_artifacts"`
	Authority         string   `json:"authority" yaml:"authority"`
}

type DraftTemplate struct {
	TemplateID      string   `json:"template_id" yaml:"template_id"`
	OutputType      string   `json:"output_type" yaml:"output_type"`
	ApplicableStage string   `json:"applicable_stage" yaml:"applicable_stage"`
	Placeholders    []string `json:"placeholders" yaml:"placeholders"`
}

// Project is a permitting project instance. Everything after Permits is
// descriptive context carried through untouched.
type Project struct {
	ID                string          `json:"id" yaml:"id"`
	Name              string          `json:"name" yaml:"name"`
	Pfad              Pfad            `json:"pfad" yaml:"pfad" enum:"NABEG,EnWG"`
	KVLevel           int             `json:"kv_level" yaml:"kv_level"`
	Technology        string          `json:"technology" yaml:"technology"`
	RoutingType       string          `json:"routing_type" yaml:"routing_type"`
	StatesCrossed     []string        `json:"states_crossed" yaml:"states_crossed"`
	LengthKm          float64         `json:"length_km" yaml:"length_km"`
	IsCrossBorder     bool            `json:"is_cross_border" yaml:"is_cross_border"`
	IsMultiState      bool            `json:"is_multi_state" yaml:"is_multi_state"`
	CurrentStageIndex int             `json:"current_stage_index" yaml:"current_stage_index"`
	Stages            []StageInstance `json:"stages" yaml:"stages"`
	Sections          []Section       `json:"sections" yaml:"sections"`
	Permits           []PermitStatus  `json:"permits" yaml:"permits"`

	Blockers               []Blocker               `json:"blockers" yaml:"blockers"`
	GeoLayers              []GeoLayer              `json:"geo_layers" yaml:"geo_layers"`
	LandParcels            []LandParcel            `json:"land_parcels" yaml:"land_parcels"`
	Stakeholders           []Stakeholder           `json:"stakeholders" yaml:"stakeholders"`
	HistoricalCases        []HistoricalCase        `json:"historical_cases" yaml:"historical_cases"`
	Documents              []ProjectDocument       `json:"documents" yaml:"documents"`
	ProjectTasks           []ProjectTask           `json:"project_tasks" yaml:"project_tasks"`
	Risks                  []Risk                  `json:"risks" yaml:"risks"`
	RegulatoryRequirements []RegulatoryRequirement `json:"regulatory_requirements" yaml:"regulatory_requirements"`
	DraftTemplates         []DraftTemplate         `json:"draft_templates" yaml:"draft_templates"`
	CreatedAt              time.Time               `json:"created_at" yaml:"created_at" format:"date-time"`
}

type Event struct {
	ID         int64  `json:"id"`
	TS         string `json:"ts" format:"date-time"`
	Type       string `json:"type"`
	ProjectID  string `json:"project_id,omitempty"`
	EntityKind string `json:"entity_kind"`
	EntityID   string `json:"entity_id,omitempty"`
	Payload    string `json:"payload_json"`
}
