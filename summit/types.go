package summit

// Review status values for leave, overtime, and report records.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// User account status values.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Role values stored on user profiles.
const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleHRAdmin    = "hr_admin"
	RoleManager    = "manager"
	RoleSuperAdmin = "super_admin"
)

// AdminRoles lists the roles the backend treats as administrative.
// Access checks are enforced server-side; this mirrors them for callers
// that gate UI or tooling on role.
var AdminRoles = []string{RoleSupervisor, RoleHRAdmin, RoleManager, RoleSuperAdmin}

// TimeInRequest clocks the caller in. The backend keys the record by the
// current date and rejects a second time-in for the same day.
type TimeInRequest struct {
	TimeIn string `json:"time_in" validate:"required"`
	Status string `json:"status" validate:"required"`
}

// TimeOutRequest closes the caller's attendance record for today.
// ExtraHours is always sent; the zero value matches the backend default.
type TimeOutRequest struct {
	TimeOut    string  `json:"time_out" validate:"required"`
	TotalHours float64 `json:"total_hours"`
	ExtraHours float64 `json:"extra_hours"`
}

// BulkTimeOutRequest clocks out the listed employees for the given date.
// Only employees with an open time-in on that date are touched.
type BulkTimeOutRequest struct {
	Date         string   `json:"date" validate:"required"`
	EmployeeUIDs []string `json:"employee_uids"`
}

// LeaveRequest files a leave request. Dates use the YYYY-MM-DD format the
// backend parses when deducting the balance on approval.
type LeaveRequest struct {
	Type      string `json:"type" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

// OvertimeRequest files an overtime request.
type OvertimeRequest struct {
	Date   string  `json:"date" validate:"required"`
	Hours  float64 `json:"hours"`
	Reason string  `json:"reason" validate:"required"`
}

// ReportRequest submits a weekly report.
type ReportRequest struct {
	WeekStart string `json:"week_start" validate:"required"`
	WeekEnd   string `json:"week_end" validate:"required"`
	Summary   string `json:"summary" validate:"required"`
}

// PayrollRequest generates a payroll record. Optional fields left nil take
// the backend defaults: OTHours 0, OTType "Regular Workday (×1.25)",
// HourlyRate 231.
type PayrollRequest struct {
	EmployeeUID string   `json:"employee_uid" validate:"required"`
	PeriodStart string   `json:"period_start" validate:"required"`
	PeriodEnd   string   `json:"period_end" validate:"required"`
	Cutoff      string   `json:"cutoff" validate:"required"`
	BasicPay    float64  `json:"basic_pay"`
	OTPay       float64  `json:"ot_pay"`
	Incentives  float64  `json:"incentives"`
	OTHours     *float64 `json:"ot_hours,omitempty"`
	OTType      *string  `json:"ot_type,omitempty"`
	HourlyRate  *float64 `json:"hourly_rate,omitempty"`
}

// CreateUserRequest registers a profile for an existing identity-provider
// account. The backend initializes status to "active" and the leave
// balance to 15.
type CreateUserRequest struct {
	UID         string `json:"uid" validate:"required"`
	DisplayName string `json:"display_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Role        string `json:"role" validate:"required"`
	EmployeeID  string `json:"employee_id" validate:"required"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// UpdateUserRequest modifies a user profile. Nil fields are left untouched.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	Role        *string `json:"role,omitempty"`
	EmployeeID  *string `json:"employee_id,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// reviewStatusUpdate is the body of the leave/overtime/report review
// endpoints.
type reviewStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=Approved Rejected"`
}

// userStatusUpdate is the body of the user activation endpoint.
type userStatusUpdate struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// Records are stored in Firebase RTDB under camelCase keys, while request
// bodies and the fields merged in by the admin listings use snake_case.
// The JSON tags below follow that wire format exactly.

// AttendanceRecord is one day of attendance. Listings for the caller carry
// only the record fields; the admin listing merges in UID, DisplayName,
// and EmployeeID.
type AttendanceRecord struct {
	UID           string  `json:"uid"`
	Date          string  `json:"date"`
	DisplayName   string  `json:"display_name"`
	EmployeeID    string  `json:"employee_id"`
	TimeIn        string  `json:"timeIn"`
	TimeOut       string  `json:"timeOut"`
	TotalHours    float64 `json:"totalHours"`
	Status        string  `json:"status"`
	ExtraHours    float64 `json:"extraHours"`
	AdminTimedOut bool    `json:"adminTimedOut"`
	// Set when a supervisor applied the bulk time-out.
	AdminTimedOutAt string `json:"adminTimedOutAt"`
	AdminTimedOutBy string `json:"adminTimedOutBy"`
}

// LeaveRecord is a filed leave request.
type LeaveRecord struct {
	ID          string `json:"id"`
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	EmployeeID  string `json:"employee_id"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	ReviewedBy  string `json:"reviewedBy"`
	ReviewedAt  string `json:"reviewedAt"`
}

// OvertimeRecord is a filed overtime request.
type OvertimeRecord struct {
	ID          string  `json:"id"`
	UID         string  `json:"uid"`
	DisplayName string  `json:"display_name"`
	EmployeeID  string  `json:"employee_id"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Reason      string  `json:"reason"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
	ReviewedBy  string  `json:"reviewedBy"`
	ReviewedAt  string  `json:"reviewedAt"`
}

// ReportRecord is a submitted weekly report.
type ReportRecord struct {
	ID          string `json:"id"`
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	EmployeeID  string `json:"employee_id"`
	WeekStart   string `json:"weekStart"`
	WeekEnd     string `json:"weekEnd"`
	Summary     string `json:"summary"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	ReviewedBy  string `json:"reviewedBy"`
	ReviewedAt  string `json:"reviewedAt"`
}

// PayrollRecord is a generated payroll entry.
type PayrollRecord struct {
	ID          string  `json:"id"`
	PeriodStart string  `json:"periodStart"`
	PeriodEnd   string  `json:"periodEnd"`
	Cutoff      string  `json:"cutoff"`
	BasicPay    float64 `json:"basicPay"`
	OTPay       float64 `json:"otPay"`
	Incentives  float64 `json:"incentives"`
	GrossPay    float64 `json:"grossPay"`
	OTHours     float64 `json:"otHours"`
	OTType      string  `json:"otType"`
	HourlyRate  float64 `json:"hourlyRate"`
	GeneratedAt string  `json:"generatedAt"`
	GeneratedBy string  `json:"generatedBy"`
}

// User is a user profile.
type User struct {
	UID         string `json:"uid"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	EmployeeID  string `json:"employeeID"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	Status      string `json:"status"`
	// LeaveBalance starts at 15 and is deducted on leave approval.
	LeaveBalance int `json:"leaveBalance"`
}

// Session is the verified identity returned by Auth.Verify.
type Session struct {
	UID         string `json:"uid"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`
	EmployeeID  string `json:"employee_id"`
}

// Ack is a bare confirmation message.
type Ack struct {
	Message string `json:"message"`
}

// SubmitResult confirms a filed request and carries its generated ID.
type SubmitResult struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// TimeInResult confirms a recorded time-in.
type TimeInResult struct {
	Message string `json:"message"`
	Date    string `json:"date"`
	TimeIn  string `json:"time_in"`
}

// TimeOutResult confirms a recorded time-out.
type TimeOutResult struct {
	Message    string  `json:"message"`
	TotalHours float64 `json:"total_hours"`
}

// BulkTimeOutResult reports which employees were clocked out.
type BulkTimeOutResult struct {
	Message string   `json:"message"`
	Updated []string `json:"updated"`
}

// PayrollResult confirms a generated payroll record.
type PayrollResult struct {
	Message  string  `json:"message"`
	ID       string  `json:"id"`
	GrossPay float64 `json:"gross_pay"`
}

// CreateUserResult confirms a created user.
type CreateUserResult struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
}

// ServiceInfo is the backend's root banner.
type ServiceInfo struct {
	Message string `json:"message"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// HealthStatus is the backend liveness response.
type HealthStatus struct {
	Status string `json:"status"`
}

// recordsEnvelope unwraps the records array that listing endpoints return.
type recordsEnvelope[T any] struct {
	Records []T `json:"records"`
}

// usersEnvelope unwraps the users listing.
type usersEnvelope struct {
	Users []User `json:"users"`
}

// String returns a pointer to s, for optional request fields.
func String(s string) *string { return &s }

// Float64 returns a pointer to f, for optional request fields.
func Float64(f float64) *float64 { return &f }
