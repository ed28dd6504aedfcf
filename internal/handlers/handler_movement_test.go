package handlers_test

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func sampleMovement(kind domain.MovementKind, accountID string) *domain.Movement {
	return &domain.Movement{
		MovementID:  uuid.NewString(),
		Kind:        kind,
		Account:     domain.AccountRef{Kind: domain.AccountKindMember, AccountID: accountID},
		Description: "fare settlement",
		Amount:      decimal.RequireFromString("50.00"),
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Type:        domain.MovementTypeOther,
		IsIncome:    true,
		IsActive:    true,
	}
}

func (suite *HandlerTestSuite) TestCreateCashMovement_Success() {
	accountID := uuid.NewString()
	created := sampleMovement(domain.MovementKindCash, accountID)
	created.CashRegisterID = uuid.NewString()

	suite.mockCashMovements.On("CreateMovement", mock.Anything, mock.MatchedBy(func(req dto.MovementRequest) bool {
		return req.MemberAccountID == accountID &&
			req.Amount.Equal(decimal.RequireFromString("50")) &&
			req.IsIncome != nil && *req.IsIncome
	}), testOperator).Return(created, nil).Once()

	body := fmt.Sprintf(`{"memberAccountID":%q,"description":"fare settlement","amount":"50.00","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":true}`, accountID)
	w := suite.do(http.MethodPost, "/api/v1/cash-movements", body)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.MovementResponse
	suite.decode(w, &res)
	suite.Equal(created.MovementID, res.MovementID)
	suite.Equal(accountID, res.MemberAccountID)
	suite.Empty(res.VehicleAccountID)
	suite.Equal(created.CashRegisterID, res.CashRegisterID)
	suite.mockNonCashMovements.AssertNotCalled(suite.T(), "CreateMovement")
}

func (suite *HandlerTestSuite) TestCreateNonCashMovement_RoutesToNonCashService() {
	created := sampleMovement(domain.MovementKindNonCash, uuid.NewString())
	suite.mockNonCashMovements.On("CreateMovement", mock.Anything, mock.Anything, testOperator).Return(created, nil).Once()

	body := `{"amount":"12.30","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":false}`
	w := suite.do(http.MethodPost, "/api/v1/non-cash-movements", body)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.mockCashMovements.AssertNotCalled(suite.T(), "CreateMovement")
}

func (suite *HandlerTestSuite) TestCreateMovement_BindingErrors() {
	cases := map[string]string{
		"missing isIncome": `{"amount":"10","date":"2024-03-15T00:00:00Z","type":"OTHER"}`,
		"zero amount":      `{"amount":"0","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":true}`,
		"negative amount":  `{"amount":"-5","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":true}`,
		"unknown type":     `{"amount":"10","date":"2024-03-15T00:00:00Z","type":"BONUS","isIncome":true}`,
		"bad account id":   `{"memberAccountID":"nope","amount":"10","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":true}`,
		"malformed json":   `{"amount":`,
	}
	for name, body := range cases {
		w := suite.do(http.MethodPost, "/api/v1/cash-movements", body)
		suite.Equal(http.StatusBadRequest, w.Code, name)
	}
	suite.mockCashMovements.AssertNotCalled(suite.T(), "CreateMovement")
}

func (suite *HandlerTestSuite) TestCreateMovement_ServiceValidationError() {
	suite.mockCashMovements.On("CreateMovement", mock.Anything, mock.Anything, testOperator).
		Return(nil, fmt.Errorf("%w: %w", apperrors.ErrValidation, domain.ErrMultipleAccounts)).Once()

	body := fmt.Sprintf(`{"memberAccountID":%q,"vehicleAccountID":%q,"amount":"10","date":"2024-03-15T00:00:00Z","type":"OTHER","isIncome":true}`,
		uuid.NewString(), uuid.NewString())
	w := suite.do(http.MethodPost, "/api/v1/cash-movements", body)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUpdateMovement_Success() {
	movementID := uuid.NewString()
	updated := sampleMovement(domain.MovementKindCash, uuid.NewString())
	updated.MovementID = movementID
	updated.IsIncome = false

	suite.mockCashMovements.On("UpdateMovement", mock.Anything, movementID, mock.MatchedBy(func(req dto.MovementRequest) bool {
		return req.Type == domain.MovementTypeWorkshopOrder
	}), testOperator).Return(updated, nil).Once()

	body := fmt.Sprintf(`{"vehicleAccountID":%q,"amount":"30","date":"2024-03-15T00:00:00Z","type":"WORKSHOP_ORDER","isIncome":false}`, uuid.NewString())
	w := suite.do(http.MethodPut, "/api/v1/cash-movements/"+movementID, body)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.MovementResponse
	suite.decode(w, &res)
	suite.Equal(movementID, res.MovementID)
	suite.False(res.IsIncome)
}

func (suite *HandlerTestSuite) TestDeleteMovement() {
	movementID := uuid.NewString()
	suite.mockCashMovements.On("DeleteMovement", mock.Anything, movementID, testOperator).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/cash-movements/"+movementID, nil)
	suite.Equal(http.StatusNoContent, w.Code)

	missing := uuid.NewString()
	suite.mockCashMovements.On("DeleteMovement", mock.Anything, missing, testOperator).
		Return(fmt.Errorf("movement %s: %w", missing, apperrors.ErrNotFound)).Once()

	w = suite.do(http.MethodDelete, "/api/v1/cash-movements/"+missing, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestGetMovement() {
	m := sampleMovement(domain.MovementKindNonCash, uuid.NewString())
	suite.mockNonCashMovements.On("GetMovement", mock.Anything, m.MovementID).Return(m, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/non-cash-movements/"+m.MovementID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.MovementResponse
	suite.decode(w, &res)
	suite.Equal(domain.MovementKindNonCash, res.Kind)
	suite.Empty(res.CashRegisterID)
}

func (suite *HandlerTestSuite) TestListMovements_PassesFiltersAndToken() {
	accountID := uuid.NewString()
	page := []domain.Movement{*sampleMovement(domain.MovementKindCash, accountID)}

	suite.mockCashMovements.On("ListMovements", mock.Anything, mock.MatchedBy(func(p dto.ListMovementsParams) bool {
		return p.AccountID == accountID &&
			p.Limit == 1 &&
			p.Status == "ALL" &&
			p.From.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) &&
			p.NextToken == "abc"
	})).Return(page, "next-page", nil).Once()

	url := fmt.Sprintf("/api/v1/cash-movements?accountID=%s&limit=1&status=ALL&from=2024-03-01&nextToken=abc", accountID)
	w := suite.do(http.MethodGet, url, nil)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.ListMovementsResponse
	suite.decode(w, &res)
	suite.Len(res.Movements, 1)
	suite.Equal("next-page", res.NextToken)
}

func (suite *HandlerTestSuite) TestListMovements_InvalidParams() {
	for _, q := range []string{"limit=0", "limit=101", "status=DELETED", "from=15-03-2024"} {
		w := suite.do(http.MethodGet, "/api/v1/cash-movements?"+q, nil)
		suite.Equal(http.StatusBadRequest, w.Code, q)
	}
	suite.mockCashMovements.AssertNotCalled(suite.T(), "ListMovements")
}
