package service

// PresetTarget 目标预设
// 静态查表，不落库
type PresetTarget struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Default     PresetDefault `json:"default"`
}

// PresetDefault 预设的默认目标值
type PresetDefault struct {
	TargetBMI     float64 `json:"target_bmi"`
	TargetBodyFat float64 `json:"target_body_fat"`
}

var presetTargets = []PresetTarget{
	{
		ID:          "goku",
		Name:        "悟空",
		Description: "高肌肉量+低体脂的健美型",
		Default:     PresetDefault{TargetBMI: 24.0, TargetBodyFat: 10.0},
	},
	{
		ID:          "athlete",
		Name:        "竞技运动员",
		Description: "面向竞技的精瘦型",
		Default:     PresetDefault{TargetBMI: 22.0, TargetBodyFat: 12.0},
	},
	{
		ID:          "bulk",
		Name:        "力量举选手",
		Description: "以肌肉量为先，体重可放宽",
		Default:     PresetDefault{TargetBMI: 27.0, TargetBodyFat: 18.0},
	},
}

// ListPresets 返回全部目标预设
func ListPresets() []PresetTarget {
	return presetTargets
}
