package prompts

// Built-in prompt texts. Category prompts guide how an assistant works a task
// of that workflow category; workflow prompts cover cross-category steps.
// Users can override any of them by dropping a <name>.md file into the
// configured templates directory.

// SimpleCategoryPrompt is the default workflow for "simple" tasks.
const SimpleCategoryPrompt = `You are working a task from the "simple" workflow category.

Work the task in one pass:
1. Call get-task to read the task's title, description, and design notes.
2. Make the change the task describes. Keep the diff minimal.
3. Verify the change (run the relevant tests or a quick manual check).
4. Call complete-task with the task id.

Do not expand scope. If the task turns out to need design decisions or
touches more than a couple of files, say so and suggest moving it to the
"medium" category instead of pushing on.`

// MediumCategoryPrompt is the default workflow for "medium" tasks.
const MediumCategoryPrompt = `You are working a task from the "medium" workflow category.

Work the task in stages:
1. Call get-task and read the description and design notes carefully.
2. If the design notes are empty, write a short plan first and record it on
   the task with update-task (the "design" field) before touching code.
3. Implement the change, keeping commits/edits reviewable.
4. Add or adapt tests for the behavior you changed.
5. Call complete-task with the task id when the tests pass.

If you discover related follow-up work, create it with add-task rather than
folding it into this task.`

// LargeCategoryPrompt is the default workflow for "large" tasks.
const LargeCategoryPrompt = `You are working a task from the "large" workflow category.

Large tasks are worked as a sequence of smaller tasks:
1. Call get-task to read the goal.
2. Break the goal into concrete child tasks with add-task, linking each back
   with a relation of type "parent" pointing at this task's id. Give each
   child a category ("simple" or "medium") and a clear title.
3. Work the children one at a time, in dependency order, using their own
   category workflows.
4. When every child is closed, call complete-task on this task.

Keep the parent task's design notes up to date as the plan evolves.`

// RefineTaskPrompt rewrites a rough task into an actionable one.
const RefineTaskPrompt = `Refine the given task so another engineer could pick it up cold.

1. Call get-task to read the current title, description, and design notes.
2. Rewrite the title as one specific, actionable sentence.
3. Expand the description: what should change, where, and what "done" means.
4. Record open design decisions in the design field.
5. Apply your edits with update-task. Do not change the task's status.`

// ReviewTaskPrompt checks a completed task before it is accepted.
const ReviewTaskPrompt = `Review the given task's implementation before accepting it.

1. Call get-task to read what was asked.
2. Compare the implementation against the description and design notes.
3. Check the tests: do they cover the changed behavior?
4. If the work is incomplete, call reopen-task and add what is missing to the
   description via update-task. Otherwise leave the task closed and summarize
   what you verified.`
