package service

import (
	"errors"
	"testing"

	"fittrack/internal/repository"

	"gorm.io/gorm"
)

func newWorkoutServices(db *gorm.DB) (*WorkoutService, *LiftService) {
	liftRepo := repository.NewLiftRepository(db)
	workoutSvc := NewWorkoutService(repository.NewWorkoutRepository(db), liftRepo)
	return workoutSvc, NewLiftService(liftRepo)
}

func TestCreateWorkout(t *testing.T) {
	db := newTestDB(t)
	workoutSvc, liftSvc := newWorkoutServices(db)

	alice := createTestUser(t, db, "alice")

	bench, err := liftSvc.CreateExercise("bench press")
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	squat, err := liftSvc.CreateExercise("squat")
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}

	sets := []SetInput{
		{ExerciseID: bench.ID, WeightKg: 60, Reps: 8},
		{ExerciseID: bench.ID, WeightKg: 62.5, Reps: 6},
		{ExerciseID: squat.ID, WeightKg: 80, Reps: 5},
	}
	workout, err := workoutSvc.CreateWorkout(alice.ID, "2026-08-20", "push day", sets)
	if err != nil {
		t.Fatalf("create workout: %v", err)
	}
	if len(workout.Sets) != 3 {
		t.Fatalf("set count = %d, want 3", len(workout.Sets))
	}
	// 未指定set_no时按顺序补齐
	for i, set := range workout.Sets {
		if set.SetNo != i+1 {
			t.Errorf("set #%d set_no = %d, want %d", i, set.SetNo, i+1)
		}
	}

	list, err := workoutSvc.ListMine(alice.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("workout count = %d, want 1", len(list))
	}
	if len(list[0].Sets) != 3 {
		t.Errorf("loaded set count = %d, want 3", len(list[0].Sets))
	}
	if list[0].Note != "push day" {
		t.Errorf("note = %q, want %q", list[0].Note, "push day")
	}
}

func TestCreateWorkoutValidation(t *testing.T) {
	db := newTestDB(t)
	workoutSvc, liftSvc := newWorkoutServices(db)

	alice := createTestUser(t, db, "alice")

	bench, err := liftSvc.CreateExercise("bench press")
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	good := []SetInput{{ExerciseID: bench.ID, WeightKg: 60, Reps: 8}}

	cases := []struct {
		name        string
		performedAt string
		sets        []SetInput
	}{
		{"no sets", "2026-08-20", nil},
		{"bad date", "20-08-2026", good},
		{"zero weight", "2026-08-20", []SetInput{{ExerciseID: bench.ID, WeightKg: 0, Reps: 8}}},
		{"zero reps", "2026-08-20", []SetInput{{ExerciseID: bench.ID, WeightKg: 60, Reps: 0}}},
		{"unknown exercise", "2026-08-20", []SetInput{{ExerciseID: 9999, WeightKg: 60, Reps: 8}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := workoutSvc.CreateWorkout(alice.ID, tc.performedAt, "", tc.sets); !errors.Is(err, ErrValidation) {
				t.Errorf("error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCreateWorkoutDateLayouts(t *testing.T) {
	db := newTestDB(t)
	workoutSvc, liftSvc := newWorkoutServices(db)

	alice := createTestUser(t, db, "alice")

	bench, err := liftSvc.CreateExercise("bench press")
	if err != nil {
		t.Fatalf("create exercise: %v", err)
	}
	sets := []SetInput{{ExerciseID: bench.ID, WeightKg: 60, Reps: 8}}

	// 日期和日期时间两种格式都接受
	for _, performedAt := range []string{"2026-08-20", "2026-08-20T18:30:00"} {
		if _, err := workoutSvc.CreateWorkout(alice.ID, performedAt, "", sets); err != nil {
			t.Errorf("CreateWorkout(%q): %v", performedAt, err)
		}
	}
}
