package services

import (
	"context"
	"testing"
	"time"

	"fooddelivery/entity"
	"fooddelivery/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerSignupRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	sender := &recordingSender{}
	svc := NewCustomerService(repos, testCreds, sender)

	res, err := svc.Signup(ctx, CustomerSignupInput{Email: "Ann@Example.com", Phone: "9876543210", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", res.Email)
	assert.False(t, res.Verified)
	require.Len(t, sender.otps, 1)

	_, err = svc.Signup(ctx, CustomerSignupInput{Email: "ann@example.com", Phone: "1234567", Password: "other12"})
	assert.ErrorIs(t, err, ErrCustomerExists)
	assert.Len(t, sender.otps, 1)

	stored, err := repos.Customers.FindByEmail(ctx, "ann@example.com")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", stored.Phone)
}

func TestCustomerLogin(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newRepos(t), testCreds, &recordingSender{})
	_, err := svc.Signup(ctx, CustomerSignupInput{Email: "bob@example.com", Phone: "9876543210", Password: "secret1"})
	require.NoError(t, err)

	res, err := svc.Login(ctx, CustomerLoginInput{Email: "bob@example.com", Password: "secret1"})
	require.NoError(t, err)
	p, err := utils.ValidateSignature(res.Signature, testCreds.Secret)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, p.Role)

	_, err = svc.Login(ctx, CustomerLoginInput{Email: "bob@example.com", Password: "wrong12"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, CustomerLoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCustomerVerify(t *testing.T) {
	issued := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	expiry := issued.Add(utils.OTPValidity)

	cases := []struct {
		name   string
		now    time.Time
		otp    func(int) int
		wantOK bool
	}{
		{name: "matching before expiry", now: issued.Add(time.Minute), otp: func(o int) int { return o }, wantOK: true},
		{name: "matching at expiry", now: expiry, otp: func(o int) int { return o }, wantOK: true},
		{name: "one second past expiry", now: expiry.Add(time.Second), otp: func(o int) int { return o }},
		{name: "wrong code", now: issued.Add(time.Minute), otp: func(o int) int { return o + 1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := context.Background()
			repos := newRepos(t)
			sender := &recordingSender{}
			svc := NewCustomerService(repos, testCreds, sender)
			svc.now = func() time.Time { return issued }

			res, err := svc.Signup(ctx, CustomerSignupInput{Email: "otp@example.com", Phone: "9876543210", Password: "secret1"})
			require.NoError(t, err)
			p, err := utils.ValidateSignature(res.Signature, testCreds.Secret)
			require.NoError(t, err)

			svc.now = func() time.Time { return tc.now }
			got, err := svc.Verify(ctx, p, tc.otp(sender.otps[0]))

			stored, ferr := repos.Customers.FindByID(ctx, p.ID)
			require.NoError(t, ferr)
			if tc.wantOK {
				require.NoError(t, err)
				assert.True(t, got.Verified)
				assert.True(t, stored.Verified)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidOTP)
			assert.False(t, stored.Verified)
		})
	}
}

func TestRequestOtpRegeneratesCode(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	sender := &recordingSender{}
	svc := NewCustomerService(repos, testCreds, sender)

	res, err := svc.Signup(ctx, CustomerSignupInput{Email: "again@example.com", Phone: "9876543210", Password: "secret1"})
	require.NoError(t, err)
	p, err := utils.ValidateSignature(res.Signature, testCreds.Secret)
	require.NoError(t, err)

	later := time.Now().Add(2 * time.Hour)
	svc.now = func() time.Time { return later }
	require.NoError(t, svc.RequestOtp(ctx, p))
	require.Len(t, sender.otps, 2)

	stored, err := repos.Customers.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, sender.otps[1], stored.OTP)
	assert.WithinDuration(t, later.Add(utils.OTPValidity), stored.OTPExpiry, time.Second)

	_, err = svc.Verify(ctx, p, sender.otps[1])
	assert.NoError(t, err)
}

func TestEditCustomerProfile(t *testing.T) {
	ctx := context.Background()
	repos := newRepos(t)
	svc := NewCustomerService(repos, testCreds, &recordingSender{})
	_, p := seedCustomer(t, repos)

	c, err := svc.EditProfile(ctx, p, EditProfileInput{FirstName: " Ann ", LastName: "Lee", Address: "12 Main Road"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", c.FirstName)

	got, err := svc.Profile(ctx, p)
	require.NoError(t, err)
	assert.Equal(t, "12 Main Road", got.Address)
}
