package looptest

import "loopsmith/pkg/looptree"

// DefaultSchedule returns a realistic built-in update loop: a root with
// the usual engine phases, each phase carrying native-wired sub-stages.
// Handle values are arbitrary non-zero constants so tests can verify
// they survive copies and edits verbatim.
func DefaultSchedule() *looptree.Node {
	return &looptree.Node{
		Label:         "PlayerLoop",
		LoopCondition: 0x100,
		Children: []*looptree.Node{
			{Label: "Initialization", NativeUpdate: 0x210, Children: []*looptree.Node{
				{Label: "TimeUpdate", NativeUpdate: 0x211},
				{Label: "AsyncUploads", NativeUpdate: 0x212},
			}},
			{Label: "EarlyUpdate", NativeUpdate: 0x220, Children: []*looptree.Node{
				{Label: "InputPoll", NativeUpdate: 0x221},
				{Label: "ProfilerFrameStart", NativeUpdate: 0x222},
			}},
			{Label: "FixedUpdate", NativeUpdate: 0x230, LoopCondition: 0x231, Children: []*looptree.Node{
				{Label: "PhysicsStep", NativeUpdate: 0x232},
				{Label: "FixedBehaviours", NativeUpdate: 0x233},
			}},
			{Label: "PreUpdate", NativeUpdate: 0x240, Children: []*looptree.Node{
				{Label: "AnimationBegin", NativeUpdate: 0x241},
			}},
			{Label: "Update", NativeUpdate: 0x250, Children: []*looptree.Node{
				{Label: "ScriptBehaviours", NativeUpdate: 0x251},
				{Label: "DelayedTasks", NativeUpdate: 0x252},
			}},
			{Label: "PreLateUpdate", NativeUpdate: 0x260, Children: []*looptree.Node{
				{Label: "AnimationEnd", NativeUpdate: 0x261},
				{Label: "LateBehaviours", NativeUpdate: 0x262},
			}},
			{Label: "PostLateUpdate", NativeUpdate: 0x270, Children: []*looptree.Node{
				{Label: "Rendering", NativeUpdate: 0x271},
				{Label: "AudioUpdate", NativeUpdate: 0x272},
				{Label: "ProfilerFrameEnd", NativeUpdate: 0x273},
			}},
		},
	}
}
