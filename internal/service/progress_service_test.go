package service

import (
	"errors"
	"testing"

	"fittrack/internal/model"
	"fittrack/internal/repository"
)

func TestTeamSeries(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	progressSvc := newProgressService(db)
	measurementSvc := NewMeasurementService(repository.NewMeasurementRepository(db))

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	team, err := teamSvc.CreateTeam("Squad", alice.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}
	if _, err := teamSvc.JoinByCode(team.InviteCode, bob.ID); err != nil {
		t.Fatalf("bob join: %v", err)
	}

	// alice有两条记录，bob一条都没有
	if _, err := measurementSvc.Log(alice.ID, "goku", 170, 60, 20, 1); err != nil {
		t.Fatalf("log #1: %v", err)
	}
	if _, err := measurementSvc.Log(alice.ID, "goku", 170, 59, 19, 2); err != nil {
		t.Fatalf("log #2: %v", err)
	}

	result, err := progressSvc.TeamSeries(team.ID, model.MetricLevel, bob.ID)
	if err != nil {
		t.Fatalf("team series: %v", err)
	}
	if result.TeamID != team.ID || result.Metric != model.MetricLevel {
		t.Errorf("result header = %+v, want team %d metric %q", result, team.ID, model.MetricLevel)
	}
	if len(result.Series) != 2 {
		t.Fatalf("series length = %d, want 2 (one entry per member)", len(result.Series))
	}

	byUser := make(map[uint]UserSeries, len(result.Series))
	for _, s := range result.Series {
		byUser[s.UserID] = s
	}

	aliceSeries := byUser[alice.ID]
	if len(aliceSeries.Points) != 2 {
		t.Fatalf("alice points = %d, want 2", len(aliceSeries.Points))
	}
	if aliceSeries.Points[0].V != 1 || aliceSeries.Points[1].V != 2 {
		t.Errorf("alice level series = [%v, %v], want [1, 2]",
			aliceSeries.Points[0].V, aliceSeries.Points[1].V)
	}
	if aliceSeries.Points[0].T.After(aliceSeries.Points[1].T) {
		t.Error("alice points not in ascending time order")
	}

	// 没有数据的成员返回空序列而不是被省略
	bobSeries, ok := byUser[bob.ID]
	if !ok {
		t.Fatal("bob missing from series")
	}
	if bobSeries.Points == nil {
		t.Error("bob points = nil, want empty slice")
	}
	if len(bobSeries.Points) != 0 {
		t.Errorf("bob points = %d, want 0", len(bobSeries.Points))
	}
	if bobSeries.Username != "bob" {
		t.Errorf("bob username = %q, want %q", bobSeries.Username, "bob")
	}
}

func TestTeamSeriesAuthorization(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	progressSvc := newProgressService(db)

	alice := createTestUser(t, db, "alice")
	outsider := createTestUser(t, db, "carol")

	team, err := teamSvc.CreateTeam("Squad", alice.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	// 非成员被拒绝
	if _, err := progressSvc.TeamSeries(team.ID, model.MetricWeight, outsider.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("outsider error = %v, want ErrForbidden", err)
	}
	// 不存在的团队
	if _, err := progressSvc.TeamSeries(9999, model.MetricWeight, alice.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing team error = %v, want ErrNotFound", err)
	}
}

func TestTeamSeriesInvalidMetric(t *testing.T) {
	db := newTestDB(t)
	teamSvc := newTeamService(db)
	progressSvc := newProgressService(db)

	alice := createTestUser(t, db, "alice")
	team, err := teamSvc.CreateTeam("Squad", alice.ID)
	if err != nil {
		t.Fatalf("create team: %v", err)
	}

	// 指标校验先于一切行数据访问，对不存在的团队也是同样的错误
	if _, err := progressSvc.TeamSeries(team.ID, "height", alice.ID); !errors.Is(err, ErrInvalidMetric) {
		t.Errorf("bad metric error = %v, want ErrInvalidMetric", err)
	}
	if _, err := progressSvc.TeamSeries(9999, "height", alice.ID); !errors.Is(err, ErrInvalidMetric) {
		t.Errorf("bad metric on missing team error = %v, want ErrInvalidMetric", err)
	}
}

func TestFriendWorkouts(t *testing.T) {
	db := newTestDB(t)
	friendSvc := newFriendService(db)
	progressSvc := newProgressService(db)
	liftSvc := NewLiftService(repository.NewLiftRepository(db))
	workoutSvc := NewWorkoutService(
		repository.NewWorkoutRepository(db),
		repository.NewLiftRepository(db),
	)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")

	exercise, err := liftSvc.CreateExercise("bench press")
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	sets := []SetInput{{ExerciseID: exercise.ID, WeightKg: 60, Reps: 8}}
	if _, err := workoutSvc.CreateWorkout(alice.ID, "2026-08-01", "", sets); err != nil {
		t.Fatalf("workout #1: %v", err)
	}
	if _, err := workoutSvc.CreateWorkout(alice.ID, "2026-08-15", "", sets); err != nil {
		t.Fatalf("workout #2: %v", err)
	}

	// 非好友被拒绝
	if _, err := progressSvc.FriendWorkouts(alice.ID, bob.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("non-friend error = %v, want ErrForbidden", err)
	}

	req, err := friendSvc.SendRequest(bob.ID, alice.ID)
	if err != nil {
		t.Fatalf("send request: %v", err)
	}
	if err := friendSvc.AcceptRequest(req.ID, alice.ID); err != nil {
		t.Fatalf("accept: %v", err)
	}

	workouts, err := progressSvc.FriendWorkouts(alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("friend workouts: %v", err)
	}
	if len(workouts) != 2 {
		t.Fatalf("workouts = %d, want 2", len(workouts))
	}
	// 按训练日期降序
	if workouts[0].PerformedAt.Before(workouts[1].PerformedAt) {
		t.Error("workouts not in descending performed_at order")
	}
}
