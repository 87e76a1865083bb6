package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/staffhub-dev/attendance-backend-go/internal/domain/payroll"
	"github.com/staffhub-dev/attendance-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `
	id, employee_id, month, year, base_salary, total_hours, bonuses,
	deductions, net_salary, status, payment_date, created_at, updated_at`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.TotalHours,
		&p.Bonuses, &p.Deductions, &p.NetSalary, &p.Status, &p.PaymentDate,
		&p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// UpsertGenerated implements payroll.PayrollRepository. The ON CONFLICT
// clause makes re-running a period rewrite only the computed figures;
// bonuses, deductions and status keep whatever an admin set. Monetary and
// hour values are rounded to 2 decimals here, at the persistence boundary.
func (r *payrollRepository) UpsertGenerated(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (
			id, employee_id, month, year, base_salary, total_hours,
			bonuses, deductions, net_salary, status, payment_date
		) VALUES ($1, $2, $3, $4, $5, $6, 0, 0, $7, $8, $9)
		ON CONFLICT (employee_id, month, year) DO UPDATE SET
			base_salary  = EXCLUDED.base_salary,
			total_hours  = EXCLUDED.total_hours,
			net_salary   = EXCLUDED.net_salary,
			payment_date = EXCLUDED.payment_date,
			updated_at   = NOW()
		RETURNING ` + payrollColumns

	row := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Month,
		record.Year,
		record.BaseSalary.Round(2),
		record.TotalHours.Round(2),
		record.NetSalary.Round(2),
		string(payroll.PayrollStatusPending),
		record.PaymentDate,
	)

	saved, err := scanPayroll(row)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to upsert payroll record: %w", err)
	}

	return saved, nil
}

// GetByID implements payroll.PayrollRepository.
func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			p.id, p.employee_id, p.month, p.year, p.base_salary, p.total_hours,
			p.bonuses, p.deductions, p.net_salary, p.status, p.payment_date,
			p.created_at, p.updated_at,
			e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	var p payroll.Payroll
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.TotalHours,
		&p.Bonuses, &p.Deductions, &p.NetSalary, &p.Status, &p.PaymentDate,
		&p.CreatedAt, &p.UpdatedAt,
		&p.EmployeeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record by ID: %w", err)
	}

	return p, nil
}

// GetByEmployeePeriod implements payroll.PayrollRepository.
func (r *payrollRepository) GetByEmployeePeriod(ctx context.Context, employeeID, month string, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollColumns + `
		FROM payrolls
		WHERE employee_id = $1 AND month = $2 AND year = $3
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, employeeID, month, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Payroll{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll record by period: %w", err)
	}

	return p, nil
}

// List implements payroll.PayrollRepository.
func (r *payrollRepository) List(ctx context.Context, filter payroll.PayrollFilter) ([]payroll.Payroll, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND p.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseWhere += fmt.Sprintf(" AND p.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM payrolls p WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT
			p.id, p.employee_id, p.month, p.year, p.base_salary, p.total_hours,
			p.bonuses, p.deductions, p.net_salary, p.status, p.payment_date,
			p.created_at, p.updated_at,
			e.full_name AS employee_name
		FROM payrolls p
		LEFT JOIN employees e ON e.id = p.employee_id
		WHERE %s
		ORDER BY p.year DESC, p.payment_date DESC, e.full_name ASC
		LIMIT $%d OFFSET $%d
	`, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var p payroll.Payroll
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.Year, &p.BaseSalary, &p.TotalHours,
			&p.Bonuses, &p.Deductions, &p.NetSalary, &p.Status, &p.PaymentDate,
			&p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, p)
	}

	return records, total, rows.Err()
}

// UpdateOverride implements payroll.PayrollRepository. Only the four
// admin-editable fields can ever appear in the SET clause.
func (r *payrollRepository) UpdateOverride(ctx context.Context, req payroll.UpdatePayrollRecordRequest) error {
	q := GetQuerier(ctx, r.db)

	updates := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)
	argIdx := 1

	if req.Bonuses != nil {
		updates = append(updates, fmt.Sprintf("bonuses = $%d", argIdx))
		args = append(args, req.Bonuses.Round(2))
		argIdx++
	}
	if req.Deductions != nil {
		updates = append(updates, fmt.Sprintf("deductions = $%d", argIdx))
		args = append(args, req.Deductions.Round(2))
		argIdx++
	}
	if req.NetSalary != nil {
		updates = append(updates, fmt.Sprintf("net_salary = $%d", argIdx))
		args = append(args, req.NetSalary.Round(2))
		argIdx++
	}
	if req.Status != nil {
		updates = append(updates, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}

	if len(updates) == 0 {
		return payroll.ErrNothingToUpdate
	}

	updates = append(updates, fmt.Sprintf("updated_at = $%d", argIdx))
	args = append(args, time.Now())
	argIdx++

	args = append(args, req.ID)

	query := "UPDATE payrolls SET " + strings.Join(updates, ", ") +
		fmt.Sprintf(" WHERE id = $%d RETURNING id", argIdx)

	var updatedID string
	if err := q.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayrollRecordNotFound
		}
		return fmt.Errorf("failed to update payroll record: %w", err)
	}

	return nil
}

// GetRunSummary implements payroll.PayrollRepository.
func (r *payrollRepository) GetRunSummary(ctx context.Context, month string, year int) (payroll.RunSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PAID'),
			COALESCE(SUM(net_salary), 0),
			COALESCE(SUM(total_hours), 0)
		FROM payrolls
		WHERE month = $1 AND year = $2
	`

	summary := payroll.RunSummary{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&summary.EmployeeCount,
		&summary.PaidCount,
		&summary.TotalNet,
		&summary.TotalHours,
	)
	if err != nil {
		return payroll.RunSummary{}, fmt.Errorf("failed to get payroll run summary: %w", err)
	}

	return summary, nil
}
