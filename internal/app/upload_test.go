package app_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/olymper/internal/app"
	"go.trai.ch/olymper/internal/core/domain"
	"go.trai.ch/olymper/internal/core/ports"
	"go.trai.ch/olymper/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var contest = &domain.ContestConfig{Host: "judge.example.org", ServerPath: "/home/judges/000042/"}

func TestApp_Upload(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{"system name": "aplusb", domain.ParamChecker: "checkers/check.cpp"})
	f.write(map[string]string{
		"checkers/check.cpp": "// checker",
		"tests/01":           "1 2\n",
		"tests/01.a":         "3\n",
		"valuer.cfg":         "global_score_type\n",
	})
	f.app.WithIO(strings.NewReader("judge\nsecret\n"), f.stdout, io.Discard)

	session := mocks.NewMockUploadSession(f.ctrl)
	stored := map[string]string{}
	record := func(path string, r io.Reader) error {
		data, err := io.ReadAll(r)
		stored[path] = string(data)
		return err
	}

	f.loader.EXPECT().LoadContest(f.root).Return(contest, nil)
	f.creds.EXPECT().Lookup("judge.example.org").Return(ports.Credentials{}, false, nil)
	gomock.InOrder(
		f.uploader.EXPECT().
			Connect(gomock.Any(), "judge.example.org", ports.Credentials{Login: "judge", Password: "secret"}).
			Return(session, nil),
		session.EXPECT().ChangeDir("/home/judges/000042/problems/aplusb").Return(nil),
		session.EXPECT().Store("check.cpp", gomock.Any()).DoAndReturn(record),
		session.EXPECT().Store("tests/01", gomock.Any()).DoAndReturn(record),
		session.EXPECT().Store("tests/01.a", gomock.Any()).DoAndReturn(record),
		session.EXPECT().Store("valuer.cfg", gomock.Any()).DoAndReturn(record),
		session.EXPECT().Close().Return(nil),
	)

	err := f.app.Upload(context.Background(), cfg, app.UploadOptions{Checker: true, Tests: true, Valuer: true})
	require.NoError(t, err)

	assert.Equal(t, "login: password: ", f.stdout.String())
	assert.Equal(t, map[string]string{
		"check.cpp":  "// checker",
		"tests/01":   "1 2\n",
		"tests/01.a": "3\n",
		"valuer.cfg": "global_score_type\n",
	}, stored)
}

func TestApp_Upload_SavedCredentials(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{"system_name": "aplusb"})
	f.write(map[string]string{"statement/statement.xml": "<problem/>"})

	session := mocks.NewMockUploadSession(f.ctrl)
	saved := ports.Credentials{Login: "olymp", Password: "pw"}

	f.loader.EXPECT().LoadContest(f.root).Return(contest, nil)
	f.creds.EXPECT().Lookup("judge.example.org").Return(saved, true, nil)
	f.uploader.EXPECT().Connect(gomock.Any(), "judge.example.org", saved).Return(session, nil)
	session.EXPECT().ChangeDir("/home/judges/000042/problems/aplusb").Return(nil)
	session.EXPECT().Store("statement.xml", gomock.Any()).Return(nil)
	session.EXPECT().Close().Return(nil)

	require.NoError(t, f.app.Upload(context.Background(), cfg, app.UploadOptions{Statement: true}))
	assert.Empty(t, f.stdout.String())
}

func TestApp_Upload_MissingFiles(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{"system_name": "aplusb"})
	f.write(map[string]string{"validator.cpp": "// validator"})

	f.loader.EXPECT().LoadContest(f.root).Return(contest, nil)

	err := f.app.Upload(context.Background(), cfg, app.UploadOptions{Validator: true, Statement: true, Testlib: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

func TestApp_Upload_NoSystemName(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(nil)

	f.loader.EXPECT().LoadContest(f.root).Return(contest, nil)

	err := f.app.Upload(context.Background(), cfg, app.UploadOptions{Checker: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingParam)
}

func TestApp_Upload_PromptClosed(t *testing.T) {
	f := newFixture(t)
	cfg := f.problem(map[string]string{"system_name": "aplusb"})

	f.loader.EXPECT().LoadContest(f.root).Return(contest, nil)
	f.creds.EXPECT().Lookup("judge.example.org").Return(ports.Credentials{}, false, nil)

	err := f.app.Upload(context.Background(), cfg, app.UploadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCredentialsMissing)
}
