package linkedin

const mainPage = `<!DOCTYPE html>
<html><head><title>Ada Lovelace | LinkedIn</title></head>
<body>
<main>
  <section>
    <h1 class="text-heading-xlarge"> Ada Lovelace </h1>
    <div class="text-body-medium break-words">Analyst of engines</div>
    <ul>
      <li><span aria-hidden="true">500+ connections</span></li>
      <li><span aria-hidden="true">1,234 followers</span></li>
    </ul>
  </section>
  <section>
    <div class="display-flex inline-show-more-text--is-collapsed">
      <span aria-hidden="true">First line<br>Second line</span>
      <span class="visually-hidden">First line Second line</span>
    </div>
  </section>
</main>
</body></html>`

const experienceHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Acme</span><span class="visually-hidden">Acme</span></div>
    <ul>
      <li class="pvs-list__item--one-column">
        <div class="t-bold"><span aria-hidden="true">Lead</span></div>
        <span class="pvs-entity__caption-wrapper" aria-hidden="true">Jan 2020 - Present · 1 yr 3 mos</span>
        <div class="t-14 t-normal t-black"><span aria-hidden="true">Leads the <b>team</b></span></div>
      </li>
      <li class="pvs-list__item--one-column">
        <div class="t-bold"><span aria-hidden="true">Engineer</span></div>
        <span class="pvs-entity__caption-wrapper" aria-hidden="true">Jun 2018 - Dec 2019 · 1 yr 6 mos</span>
      </li>
    </ul>
  </li>
  <li class="pvs-list__paged-list-item">
    <div class="display-flex hoverable-link-text t-bold"><span aria-hidden="true">Analyst</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">Globex</span></span>
    <span class="pvs-entity__caption-wrapper" aria-hidden="true">2015 - May 2018 · 3 yrs 5 mos</span>
  </li>
  <li class="pvs-list__paged-list-item">
    <div class="hoverable-link-text t-bold"><span aria-hidden="true">Stray</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">2019 - 2021 · 2 yrs</span></span>
  </li>
  <li class="pvs-list__paged-list-item">
    <div class="hoverable-link-text t-bold"><span aria-hidden="true">Lead</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">Acme</span></span>
    <span class="pvs-entity__caption-wrapper" aria-hidden="true">Jan 2020 - Present · 1 yr 3 mos</span>
  </li>
</ul>`

const educationHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">University of London</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">BSc, Mathematics</span></span>
    <span class="pvs-entity__caption-wrapper" aria-hidden="true">2010 - 2014</span>
    <div class="t-14 t-normal t-black"><span aria-hidden="true">Activities and societies: Chess, Rowing</span></div>
    <div class="t-14 t-normal t-black"><span aria-hidden="true">Thesis on engines</span></div>
  </li>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Self-taught</span></div>
  </li>
</ul>`

const certificationsHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Certified Kubernetes Administrator</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">CNCF</span></span>
    <span class="pvs-entity__caption-wrapper" aria-hidden="true">Issued Mar 2022 · Expires Mar 2025</span>
    <span class="t-14 t-normal t-black"><span aria-hidden="true">Credential ID ABC-123</span></span>
    <a href="https://www.credly.com/badges/xyz">Show credential</a>
    <div><span aria-hidden="true">Skills: Kubernetes · Linux · </span></div>
  </li>
</ul>`

const skillsHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <a data-field="skill_page_skill_topic" href="https://www.linkedin.com/search/results/all/?keywords=Go">
      <div class="t-bold"><span aria-hidden="true">Go</span></div>
    </a>
    <div><span aria-hidden="true">12 endorsements</span></div>
    <div><span aria-hidden="true">Endorsed by Grace Hopper who is highly skilled at this</span></div>
    <div><span aria-hidden="true">3 experiences across Acme and Globex</span></div>
  </li>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Rust</span></div>
  </li>
</ul>`

const recommendationsHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <a class="optional-action-target-wrapper" href="https://www.linkedin.com/in/grace/">
      <div class="t-bold"><span aria-hidden="true">Grace Hopper</span></div>
    </a>
    <span class="t-14 t-normal"><span aria-hidden="true">· 2nd</span></span>
    <span class="t-14 t-normal"><span aria-hidden="true">Rear Admiral at US Navy</span></span>
    <span class="pvs-entity__caption-wrapper" aria-hidden="true">March 3, 2021, Grace managed Ada directly</span>
    <div class="t-14 t-normal t-black"><span aria-hidden="true">Ada is brilliant.</span></div>
  </li>
</ul>`

const publicationsHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Notes on the Analytical Engine</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">Scientific Memoirs · Aug 1843</span></span>
    <a href="https://example.org/notes">Show publication</a>
    <div class="t-14 t-normal t-black"><span aria-hidden="true">Translation with notes.</span></div>
  </li>
  <li class="pvs-list__paged-list-item"><div>nothing here</div></li>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Sketch</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">Self-published</span></span>
  </li>
</ul>`

const patentsHTML = `<ul>
  <li class="pvs-list__paged-list-item">
    <div class="t-bold"><span aria-hidden="true">Difference engine</span></div>
    <span class="t-14 t-normal"><span aria-hidden="true">US 1234567 · Issued Jan 5, 1850</span></span>
    <div class="t-14 t-normal t-black"><span aria-hidden="true">A machine.</span></div>
  </li>
  <li class="pvs-list__paged-list-item"></li>
</ul>`
