package mcptests

// DoToolResponseTests verifies the substance of each tool's reply: the skill
// check must behave as a dry run, and a second setup over an already-provisioned
// project must be incremental rather than reinstalling everything.
func DoToolResponseTests(t *T) {
	params := t.Params()

	t.Run("check is a dry run", func(t *T) {
		t.RequireTool("check_project_skills")
		reply := t.CallTool("check_project_skills", ProjectArgs(params.Projects.Escaped))
		t.CheckContains("detects "+params.ExpectedType, reply, params.ExpectedType)
		t.CheckContains("DRY-RUN mode header", reply, "DRY-RUN")
		t.CheckExcludes("no ERROR", reply, "ERROR")
	})

	t.Run("setup is incremental when skills are present", func(t *T) {
		t.RequireTool("setup_project_skills")
		reply := t.CallToolWait("setup_project_skills", ProjectArgs(params.Projects.Escaped),
			params.Waits.Setup.Duration())
		t.CheckContains("detects "+params.ExpectedType, reply, params.ExpectedType)
		t.CheckExcludes("no ERROR", reply, "ERROR")
		t.CheckContains("reports total installed", reply, "Total installed")
		t.CheckContains("0 added (already present)", reply, "Added: 0")
	})
}
