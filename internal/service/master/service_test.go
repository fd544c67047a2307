package master

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowpoint/salon-backend-go/internal/domain/branch"
	"github.com/glowpoint/salon-backend-go/internal/domain/employee"
	"github.com/glowpoint/salon-backend-go/internal/pkg/validator"
	"github.com/glowpoint/salon-backend-go/internal/repository/memory"
)

func setupMasterService(t *testing.T) *MasterServiceImpl {
	t.Helper()
	return NewMasterService(memory.NewBranchRepository(), memory.NewEmployeeRepository())
}

func TestCreateBranch(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	b, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.True(t, b.IsActive)

	_, err = svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central Two", Code: "CTR"})
	assert.ErrorIs(t, err, branch.ErrBranchCodeExists)
}

func TestCreateBranchValidation(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  branch.CreateBranchRequest
	}{
		{"missing name", branch.CreateBranchRequest{Code: "CTR"}},
		{"missing code", branch.CreateBranchRequest{Name: "Central"}},
		{"lowercase code", branch.CreateBranchRequest{Name: "Central", Code: "ctr"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBranch(ctx, tc.req)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestDeactivateBranch(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	b, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateBranch(ctx, b.ID))

	// Gone from the active listing, still retrievable by id.
	active, err := svc.ListBranches(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	got, err := svc.GetBranch(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestCreateEmployee(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	b, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)

	emp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		BranchID: b.ID,
		FullName: "Ayu Lestari",
		Position: "stylist",
		HireDate: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", emp.EmploymentStatus)
	assert.Equal(t, "2024-01-15", emp.HireDate)
}

func TestCreateEmployeeInactiveBranch(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	b, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)
	require.NoError(t, svc.DeactivateBranch(ctx, b.ID))

	_, err = svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		BranchID: b.ID,
		FullName: "Ayu Lestari",
		Position: "stylist",
		HireDate: "2024-01-15",
	})
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
}

func TestResignEmployee(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	b, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)

	emp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		BranchID: b.ID,
		FullName: "Bima Putra",
		Position: "therapist",
		HireDate: "2024-03-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ResignEmployee(ctx, emp.ID, "2025-06-30"))

	got, err := svc.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "resigned", got.EmploymentStatus)

	active, err := svc.ListEmployees(ctx, &b.ID, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListEmployees(ctx, &b.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestUpdateEmployeeTransfer(t *testing.T) {
	svc := setupMasterService(t)
	ctx := context.Background()

	central, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "Central", Code: "CTR"})
	require.NoError(t, err)
	north, err := svc.CreateBranch(ctx, branch.CreateBranchRequest{Name: "North", Code: "NTH"})
	require.NoError(t, err)

	emp, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		BranchID: central.ID,
		FullName: "Ayu Lestari",
		Position: "stylist",
		HireDate: "2024-01-15",
	})
	require.NoError(t, err)

	moved, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       emp.ID,
		BranchID: &north.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, north.ID, moved.BranchID)

	missing := "no-such-branch"
	_, err = svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       emp.ID,
		BranchID: &missing,
	})
	assert.ErrorIs(t, err, branch.ErrBranchNotFound)
}
