package handlers_test

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/SscSPs/taxi_coop_backoffice/internal/apperrors"
	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetCashRegister() {
	register := &domain.CashRegister{CashRegisterID: uuid.NewString(), Amount: decimal.RequireFromString("200.00"), IsActive: true}
	suite.mockRegister.On("GetCashRegister", mock.Anything).Return(register, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/cash-register", nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.CashRegisterResponse
	suite.decode(w, &res)
	suite.Equal(register.CashRegisterID, res.CashRegisterID)
	suite.True(res.Amount.Equal(decimal.NewFromInt(200)))
}

func (suite *HandlerTestSuite) TestUpdateCashRegister() {
	amount := decimal.RequireFromString("315.40")
	updated := &domain.CashRegister{CashRegisterID: uuid.NewString(), Amount: amount, LastUpdatedBy: testOperator}
	suite.mockRegister.On("UpdateCashRegisterAmount", mock.Anything, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(amount)
	}), testOperator).Return(updated, nil).Once()

	w := suite.do(http.MethodPut, "/api/v1/cash-register", `{"amount":"315.40"}`)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var res dto.CashRegisterResponse
	suite.decode(w, &res)
	suite.Equal(testOperator, res.LastUpdatedBy)
}

func (suite *HandlerTestSuite) TestUpdateCashRegister_MissingAmount() {
	w := suite.do(http.MethodPut, "/api/v1/cash-register", `{}`)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockRegister.AssertNotCalled(suite.T(), "UpdateCashRegisterAmount")
}

func (suite *HandlerTestSuite) TestListAdvances_FilterByMember() {
	memberAccountID := uuid.NewString()
	advances := []domain.Advance{{
		AdvanceID:       uuid.NewString(),
		MovementID:      uuid.NewString(),
		MovementKind:    domain.MovementKindCash,
		MemberAccountID: memberAccountID,
		Amount:          decimal.NewFromInt(40),
		Date:            time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}}
	suite.mockAdvances.On("ListAdvances", mock.Anything, mock.MatchedBy(func(p dto.ListAdvancesParams) bool {
		return p.MemberAccountID == memberAccountID
	})).Return(advances, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/advances?memberAccountID="+memberAccountID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var res []dto.AdvanceResponse
	suite.decode(w, &res)
	suite.Require().Len(res, 1)
	suite.Equal(advances[0].MovementID, res[0].MovementID)
}

func (suite *HandlerTestSuite) TestGetAdvance_NotFound() {
	id := uuid.NewString()
	suite.mockAdvances.On("GetAdvance", mock.Anything, id).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/advances/"+id, nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *HandlerTestSuite) TestCreateVehicle_ReturnsAccount() {
	vehicle := &domain.Vehicle{VehicleID: uuid.NewString(), LicensePlate: "AB123CD", Brand: "Toyota", Model: "Corolla", Year: 2020, IsActive: true}
	account := &domain.Account{AccountID: uuid.NewString(), Kind: domain.AccountKindVehicle, OwnerID: vehicle.VehicleID, Balance: decimal.Zero, IsActive: true}
	suite.mockVehicles.On("CreateVehicle", mock.Anything, mock.MatchedBy(func(req dto.CreateVehicleRequest) bool {
		return req.LicensePlate == "ab 123 cd"
	}), testOperator).Return(vehicle, account, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/vehicles", `{"licensePlate":"ab 123 cd","brand":"Toyota","model":"Corolla","year":2020}`)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var res dto.VehicleResponse
	suite.decode(w, &res)
	suite.Equal("AB123CD", res.LicensePlate)
	suite.Require().NotNil(res.Account)
	suite.Equal(account.AccountID, res.Account.AccountID)
}

func (suite *HandlerTestSuite) TestCreateVehicle_DuplicatePlate() {
	suite.mockVehicles.On("CreateVehicle", mock.Anything, mock.Anything, testOperator).
		Return(nil, nil, fmt.Errorf("vehicle AB123CD: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/v1/vehicles", `{"licensePlate":"AB123CD","brand":"Toyota","model":"Corolla","year":2020}`)
	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *HandlerTestSuite) TestGetVehicle_IncludesAccount() {
	vehicle := &domain.Vehicle{VehicleID: uuid.NewString(), LicensePlate: "AB123CD", IsActive: true}
	account := &domain.Account{AccountID: uuid.NewString(), Kind: domain.AccountKindVehicle, OwnerID: vehicle.VehicleID, Balance: decimal.NewFromInt(-30)}
	suite.mockVehicles.On("GetVehicle", mock.Anything, vehicle.VehicleID).Return(vehicle, nil).Once()
	suite.mockAccounts.On("GetAccountByOwner", mock.Anything, domain.AccountKindVehicle, vehicle.VehicleID).Return(account, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/vehicles/"+vehicle.VehicleID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.VehicleResponse
	suite.decode(w, &res)
	suite.Require().NotNil(res.Account)
	suite.True(res.Account.Balance.Equal(decimal.NewFromInt(-30)))
}

func (suite *HandlerTestSuite) TestGetVehicle_AccountLookupFailureOmitsAccount() {
	vehicle := &domain.Vehicle{VehicleID: uuid.NewString(), LicensePlate: "AB123CD"}
	suite.mockVehicles.On("GetVehicle", mock.Anything, vehicle.VehicleID).Return(vehicle, nil).Once()
	suite.mockAccounts.On("GetAccountByOwner", mock.Anything, domain.AccountKindVehicle, vehicle.VehicleID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/vehicles/"+vehicle.VehicleID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var res dto.VehicleResponse
	suite.decode(w, &res)
	suite.Nil(res.Account)
}

func (suite *HandlerTestSuite) TestDeactivateVehicle() {
	id := uuid.NewString()
	suite.mockVehicles.On("DeactivateVehicle", mock.Anything, id, testOperator).Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/vehicles/"+id, nil)
	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlerTestSuite) login(body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.10:4000"
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestLogin() {
	suite.mockAuth.On("Login", mock.Anything, dto.LoginRequest{Username: "admin", Password: "secret"}).
		Return(&dto.AuthResponse{AccessToken: "token", TokenType: "Bearer", ExpiresIn: 3600}, nil).Once()
	suite.mockAuth.On("Login", mock.Anything, dto.LoginRequest{Username: "admin", Password: "wrong"}).
		Return(nil, apperrors.ErrUnauthorized).Once()

	w := suite.login(`{"username":"admin","password":"secret"}`)
	suite.Equal(http.StatusOK, w.Code)
	var res dto.AuthResponse
	suite.decode(w, &res)
	suite.Equal("token", res.AccessToken)

	w = suite.login(`{"username":"admin","password":"wrong"}`)
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.login(`{"username":"admin"}`)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestLogin_RateLimited() {
	suite.mockAuth.On("Login", mock.Anything, mock.Anything).Return(nil, apperrors.ErrUnauthorized).Times(5)

	for i := 0; i < 5; i++ {
		suite.Equal(http.StatusUnauthorized, suite.login(`{"username":"admin","password":"guess"}`).Code)
	}
	suite.Equal(http.StatusTooManyRequests, suite.login(`{"username":"admin","password":"guess"}`).Code)
}
